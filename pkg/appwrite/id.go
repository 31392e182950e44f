package appwrite

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ID generates document and account identifiers.
var ID idHelper

type idHelper struct{}

// Unique returns a new identifier: the hex unix seconds, the millisecond part
// padded to five hex digits, then seven random hex digits.
func (idHelper) Unique() string {
	return uniqueAt(time.Now())
}

// Custom returns id unchanged; it exists so call sites read like Unique.
func (idHelper) Custom(id string) string {
	return id
}

func uniqueAt(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%x%05x%s", now.Unix(), now.Nanosecond()/int(time.Millisecond), random[:7])
}

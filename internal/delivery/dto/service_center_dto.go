package dto

// ServiceCenterListResponse carries documents as the platform returned them,
// so attributes unknown to the service reach the app unchanged.
type ServiceCenterListResponse struct {
	ServiceCenters interface{} `json:"service_centers"`
	Total          int         `json:"total"`
}

package handler

import "vehicles-api/internal/domain"

// === Requests ===

// VehicleRequest is the body of POST and PUT requests.
// ID is ignored on create and must match the path on update when set.
type VehicleRequest struct {
	ID    int64  `json:"Id"`
	Year  int    `json:"Year"`
	Make  string `json:"Make"`
	Model string `json:"Model"`
}

func (r VehicleRequest) toDomain() *domain.Vehicle {
	return &domain.Vehicle{
		ID:    r.ID,
		Year:  r.Year,
		Make:  r.Make,
		Model: r.Model,
	}
}

// === Responses ===

// VehicleResponse is the wire form of a vehicle.
type VehicleResponse struct {
	ID    int64  `json:"Id"`
	Year  int    `json:"Year"`
	Make  string `json:"Make"`
	Model string `json:"Model"`
}

func toResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:    v.ID,
		Year:  v.Year,
		Make:  v.Make,
		Model: v.Model,
	}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type ViolationResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error      string              `json:"error"`
	Message    string              `json:"message"`
	Violations []ViolationResponse `json:"violations,omitempty"`
}

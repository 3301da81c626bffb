package response

import "hotel-booking-api/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type EmailExistsResponse struct {
	Exists bool `json:"exists"`
}

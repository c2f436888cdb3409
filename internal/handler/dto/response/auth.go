package response

import "netcard-manager/internal/usecase/readmodel"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *readmodel.AuthorizedUserRM `json:"user"`
}

type MeResponse struct {
	User *readmodel.AuthorizedUserRM `json:"user"`
}

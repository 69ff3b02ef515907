package http

import (
	"portfolio-assistant/internal/contact"
)

type submitReq struct {
	Name    string `json:"name"    binding:"required,min=1,max=100"`
	Email   string `json:"email"   binding:"required,email,max=254"`
	Message string `json:"message" binding:"required,min=1,max=5000"`
}

func (r submitReq) toInput() contact.SubmitInput {
	return contact.SubmitInput{
		Name:    r.Name,
		Email:   r.Email,
		Message: r.Message,
	}
}

type submitResp struct {
	ID string `json:"id"`
}

func newSubmitResp(o contact.SubmitOutput) submitResp {
	return submitResp{ID: o.ID}
}

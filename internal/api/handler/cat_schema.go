package handler

import "github.com/pawprint/animals-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createCatRequest struct {
	Name        string `json:"name"        validate:"required"`
	Type        string `json:"type"        validate:"required"`
	Description string `json:"description" validate:"required"`
	Habitat     string `json:"habitat"     validate:"required"`
}

// updateCatRequest distinguishes "field absent" (nil pointer) from "field set
// to the empty string" (non-nil pointer), so a partial update can explicitly
// clear a value instead of silently falling back to the stored one.
type updateCatRequest struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Habitat     *string `json:"habitat"`
}

// showCatResponse wraps a single cat in the envelope the public contract uses.
type showCatResponse struct {
	CatData domain.Cat `json:"catData"`
}

type createCatResponse struct {
	Data domain.Cat `json:"data"`
}

package api

import (
	"time"

	"github.com/giglink/giglink-cli/internal/client/models"
)

// Wire DTOs. Validation tags define the contract with the server; anything
// that fails them surfaces as ErrBadResponse at the boundary.

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Type     string `json:"type"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Type     string `json:"type"`
}

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
	Type  string `json:"type"`
}

type applyRequest struct {
	GigID string `json:"gig_id"`
}

type replaceTagsRequest struct {
	Tags []string `json:"tags"`
}

type linkSocialRequest struct {
	Platform string `json:"platform"`
	Handle   string `json:"handle"`
}

type sessionDTO struct {
	ID       string `json:"id" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=creator brand"`
	Verified bool   `json:"verified"`
}

func (d *sessionDTO) toModel() *models.Session {
	return &models.Session{
		ID:       d.ID,
		Email:    d.Email,
		Username: d.Username,
		Type:     models.Role(d.Type),
		Verified: d.Verified,
	}
}

type loginResponse struct {
	AccessToken string      `json:"access_token" validate:"required"`
	User        *sessionDTO `json:"user" validate:"required"`
}

type gigDTO struct {
	ID          string    `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Budget      int       `json:"budget" validate:"gte=0"`
	Tags        []string  `json:"tags" validate:"max=5,dive,required"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	BrandID     string    `json:"brand_id"`
}

type gigListingDTO struct {
	Gig          gigDTO `json:"gig" validate:"required"`
	Brand        string `json:"brand"`
	MatchingTags int    `json:"matching_tags"`
}

func (d *gigListingDTO) toModel() models.GigListing {
	return models.GigListing{
		Gig: models.Gig{
			ID:          d.Gig.ID,
			Title:       d.Gig.Title,
			Description: d.Gig.Description,
			Budget:      d.Gig.Budget,
			Tags:        d.Gig.Tags,
			Status:      d.Gig.Status,
			CreatedAt:   d.Gig.CreatedAt,
			BrandID:     d.Gig.BrandID,
		},
		Brand:        d.Brand,
		MatchingTags: d.MatchingTags,
	}
}

// errorResponse is the body the server sends with non-2xx statuses.
type errorResponse struct {
	Message string `json:"message"`
}

package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// successResponse acknowledges a destructive operation.
type successResponse struct {
	Success bool `json:"success"`
}

// --- Request types ---

type socialLinkRequest struct {
	Platform string `json:"platform" validate:"required,max=100"`
	URL      string `json:"url"      validate:"required,url"`
}

type createCardRequest struct {
	Name        string              `json:"name"        validate:"required,max=100"`
	Position    string              `json:"position"    validate:"required,max=100"`
	Company     string              `json:"company"     validate:"required,max=100"`
	Email       string              `json:"email"       validate:"required,email"`
	Phone       string              `json:"phone"       validate:"omitempty,frphone"`
	Website     string              `json:"website"     validate:"omitempty,url"`
	Logo        string              `json:"logo"        validate:"omitempty,max=500"`
	Theme       string              `json:"theme"       validate:"omitempty,oneof=default dark light"`
	SocialLinks []socialLinkRequest `json:"socialLinks" validate:"dive"`
}

// sanitize normalizes the payload in place before validation, so URL checks
// run against the scheme-prefixed form the repository will store.
func (r *createCardRequest) sanitize() {
	r.Name = sanitizeText(r.Name)
	r.Position = sanitizeText(r.Position)
	r.Company = sanitizeText(r.Company)
	r.Email = sanitizeText(r.Email)
	r.Phone = sanitizeText(r.Phone)
	r.Website = sanitizeURL(r.Website)
	for i := range r.SocialLinks {
		r.SocialLinks[i].Platform = sanitizeText(r.SocialLinks[i].Platform)
		r.SocialLinks[i].URL = sanitizeURL(r.SocialLinks[i].URL)
	}
}

// updateCardRequest carries partial update semantics: nil pointers mean the
// field is absent and stays untouched; a present socialLinks array replaces
// the whole set.
type updateCardRequest struct {
	ID          string               `json:"id"          validate:"required"`
	Name        *string              `json:"name"        validate:"omitempty,min=1,max=100"`
	Position    *string              `json:"position"    validate:"omitempty,min=1,max=100"`
	Company     *string              `json:"company"     validate:"omitempty,min=1,max=100"`
	Email       *string              `json:"email"       validate:"omitempty,email"`
	Phone       *string              `json:"phone"       validate:"omitempty,frphone"`
	Website     *string              `json:"website"     validate:"omitempty,url"`
	Logo        *string              `json:"logo"        validate:"omitempty,max=500"`
	Theme       *string              `json:"theme"       validate:"omitempty,oneof=default dark light"`
	SocialLinks *[]socialLinkRequest `json:"socialLinks" validate:"omitempty,dive"`
}

func (r *updateCardRequest) sanitize() {
	sanitizeTextPtr(r.Name)
	sanitizeTextPtr(r.Position)
	sanitizeTextPtr(r.Company)
	sanitizeTextPtr(r.Email)
	sanitizeTextPtr(r.Phone)
	sanitizeURLPtr(r.Website)
	if r.SocialLinks != nil {
		links := *r.SocialLinks
		for i := range links {
			links[i].Platform = sanitizeText(links[i].Platform)
			links[i].URL = sanitizeURL(links[i].URL)
		}
	}
}

func sanitizeTextPtr(s *string) {
	if s != nil {
		*s = sanitizeText(*s)
	}
}

func sanitizeURLPtr(s *string) {
	if s != nil {
		*s = sanitizeURL(*s)
	}
}

type trackViewRequest struct {
	CardID string `json:"cardId" validate:"required"`
}

type removeUploadRequest struct {
	URL string `json:"url" validate:"required"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type socialLinkResponse struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type viewResponse struct {
	ID        string    `json:"id"`
	CardID    string    `json:"cardId"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type cardResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Position    string               `json:"position"`
	Company     string               `json:"company"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone,omitempty"`
	Website     string               `json:"website,omitempty"`
	Logo        string               `json:"logo,omitempty"`
	Theme       string               `json:"theme"`
	UserID      string               `json:"userId"`
	SocialLinks []socialLinkResponse `json:"socialLinks"`
	Views       []viewResponse       `json:"views"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

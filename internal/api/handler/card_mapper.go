package handler

import (
	"github.com/saddam-69/zcardgen/internal/core/domain"
	"github.com/saddam-69/zcardgen/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createCardRequest, ownerEmail string) ports.CreateCardInput {
	return ports.CreateCardInput{
		Name:        req.Name,
		Position:    req.Position,
		Company:     req.Company,
		Email:       req.Email,
		Phone:       req.Phone,
		Website:     req.Website,
		Logo:        req.Logo,
		Theme:       req.Theme,
		SocialLinks: toLinkInputs(req.SocialLinks),
		OwnerEmail:  ownerEmail,
	}
}

func toUpdateInput(req updateCardRequest, ownerEmail string) ports.UpdateCardInput {
	in := ports.UpdateCardInput{
		ID:         req.ID,
		Name:       req.Name,
		Position:   req.Position,
		Company:    req.Company,
		Email:      req.Email,
		Phone:      req.Phone,
		Website:    req.Website,
		Logo:       req.Logo,
		Theme:      req.Theme,
		OwnerEmail: ownerEmail,
	}
	if req.SocialLinks != nil {
		links := toLinkInputs(*req.SocialLinks)
		in.SocialLinks = &links
	}
	return in
}

func toLinkInputs(links []socialLinkRequest) []ports.SocialLinkInput {
	out := make([]ports.SocialLinkInput, len(links))
	for i, l := range links {
		out[i] = ports.SocialLinkInput{Platform: l.Platform, URL: l.URL}
	}
	return out
}

// --- Domain → HTTP response ---

func toCardResponse(c *domain.Card) cardResponse {
	links := make([]socialLinkResponse, len(c.SocialLinks))
	for i, l := range c.SocialLinks {
		links[i] = socialLinkResponse{Platform: l.Platform, URL: l.URL}
	}
	views := make([]viewResponse, len(c.Views))
	for i, v := range c.Views {
		views[i] = toViewResponse(v)
	}
	return cardResponse{
		ID:          c.ID,
		Name:        c.Name,
		Position:    c.Position,
		Company:     c.Company,
		Email:       c.Email,
		Phone:       c.Phone,
		Website:     c.Website,
		Logo:        c.Logo,
		Theme:       string(c.Theme),
		UserID:      c.UserID,
		SocialLinks: links,
		Views:       views,
		CreatedAt:   c.CreatedAt.UTC(),
		UpdatedAt:   c.UpdatedAt.UTC(),
	}
}

func toViewResponse(v domain.View) viewResponse {
	return viewResponse{
		ID:        v.ID,
		CardID:    v.CardID,
		IPAddress: v.IPAddress,
		UserAgent: v.UserAgent,
		CreatedAt: v.CreatedAt.UTC(),
	}
}

func toListResponse(cards []domain.Card) []cardResponse {
	out := make([]cardResponse, len(cards))
	for i := range cards {
		out[i] = toCardResponse(&cards[i])
	}
	return out
}

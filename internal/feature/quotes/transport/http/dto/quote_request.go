// Package dto defines data transfer objects for the quotes HTTP API.
package dto

// CreateQuoteReq represents the request body for POST /quote.
// Author and tags are optional; missing tags become an empty list and a
// missing author stays null. The owning user is derived from the session, so
// the body carries no identity field.
type CreateQuoteReq struct {
	Content string   `json:"content" binding:"required"`
	Author  *string  `json:"author"`
	Tags    []string `json:"tags"`
}

// UpdateQuoteReq represents the request body for PUT /quote/:id.
// The update replaces content/author/tags wholesale; there is no partial merge.
type UpdateQuoteReq struct {
	Content string   `json:"content" binding:"required"`
	Author  *string  `json:"author"`
	Tags    []string `json:"tags"`
}

// Package plain is a thin client for the Plain customer support GraphQL
// API.
//
// Every exported method issues exactly one query or mutation (the listing
// enrichment in ThreadsWithCustomerNames fans out one extra lookup per
// row). Mutations share Plain's result envelope, in which exactly one of
// the payload or an error object is present; the error half is surfaced as
// a *MutationError carrying the remote message, code and per-field
// validation details.
//
// The client is stateless: pagination is never followed past the first
// page, nothing is cached and no call is retried.
package plain

package models

import "time"

// SimilarCandidate is one row of the ranked similarity query: a user in the
// requested age window sharing at least one hobby with the requester,
// together with the distinct shared-hobby count.
type SimilarCandidate struct {
	ID            string     `json:"id"`
	Username      string     `json:"username"`
	DateOfBirth   *time.Time `json:"-"`
	CommonHobbies int        `json:"common_hobbies"`
}

// SimilarUser is a candidate as served to the client, annotated with the
// relationship state between the requester and the candidate.
type SimilarUser struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	CommonHobbies     int    `json:"common_hobbies"`
	Age               int    `json:"age"`
	IsFriend          bool   `json:"is_friend"`
	HasPendingRequest bool   `json:"has_pending_request"`
}

// SimilarUsersPage is one page of ranked, annotated candidates.
type SimilarUsersPage struct {
	Results     []SimilarUser `json:"results"`
	Count       int           `json:"count"`
	CurrentPage int           `json:"current_page"`
	TotalPages  int           `json:"total_pages"`
}

// Package dto defines data transfer objects for the outreach feature's HTTP transport layer.
package dto

// OutreachReq represents the request body for POST /outreach.
type OutreachReq struct {
	AlumniName string `json:"alumniName" binding:"required,max=100"`
	Role       string `json:"role" binding:"required,max=100"`
	Company    string `json:"company" binding:"required,max=100"`
}

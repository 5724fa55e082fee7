// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings shared by the company directory
// API handlers and the terminal client.
//
// Msg* constants are written into HTTP response bodies; the client matches
// them when it needs to tell two failures with the same status apart.
package app

// Authentication messages.
const (
	MsgMissingRegisterFields = "Please provide username, password, and role"
	MsgInvalidRole           = `Invalid role. Must be either "viewer" or "editor"`
	MsgUsernameExists        = "Username already exists"
	MsgUserRegistered        = "User registered successfully"
	MsgMissingLoginFields    = "Please provide username and password"
	MsgInvalidCredentials    = "Invalid username or password"
	MsgLoginSuccessful       = "Login successful"

	// MsgNoToken is returned when the Authorization header is missing or is
	// not a bearer token.
	MsgNoToken = "Access denied. No token provided."

	// MsgUserNotFound is returned when a valid token names a deleted user.
	MsgUserNotFound = "Invalid token. User not found."

	MsgInvalidToken   = "Invalid token."
	MsgEditorRequired = "Access denied. Editor role required."
)

// Company messages.
const (
	MsgCompanyNotFound   = "Company not found"
	MsgCompanyAdded      = "Company added successfully"
	MsgCompanyUpdated    = "Company updated successfully"
	MsgCompanyDeleted    = "Company deleted successfully"
	MsgInvalidCompanyID  = "Invalid company id"
	MsgInvalidCompany    = "Invalid company data"
	MsgEmptyBulkImport   = "Please provide a non-empty array of companies"
	MsgBulkImportDone    = "Bulk import completed"
	MsgDataRejected      = "Data rejected by the database"
	MsgInvalidJSON       = "Invalid JSON body"
	MsgDatabaseFailed    = "Database operation failed"
	MsgDatabaseUnhealthy = "Database is unavailable"
)

// Generic messages.
const (
	MsgInternalServerError = "Internal server error"
	MsgNotFound            = "Not found"
)

// Package gcsadmin provides an internal admin tool that publishes
// documents from a Google Drive folder to a CMS. It pulls raw files
// from the drive and a tracking spreadsheet, normalizes their markup
// to a safe subset of tags, extracts a canonical title, optionally
// derives publishing metadata with an LLM, and posts the result to
// the CMS REST API.
//
// This package contains domain types, interfaces, and the pure text
// transforms following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, drive/, gemini/).
package gcsadmin

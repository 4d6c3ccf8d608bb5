package entities

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxMessageLength is the hard cap for any outreach message, counted in characters.
	MaxMessageLength = 700

	DefaultConfidenceScore = 0.5
)

// Lead is a prospect kitchen (SPPG / Dapur MBG) tracked through the outreach funnel.
//
// Storage model:
//   - PK: id
//   - unique: dedup_key (lower(name) + "|" + lower(city))
//
// Phone and OutreachMessage stay empty until discovered/drafted.
type Lead struct {
	ID              string     `json:"id"`
	Name            string     `json:"nama_sppg"`
	Address         string     `json:"alamat"`
	Province        string     `json:"provinsi"`
	City            string     `json:"kab_kota"`
	District        string     `json:"kecamatan"`
	Village         string     `json:"desa"`
	Phone           string     `json:"phone"`
	ConfidenceScore float64    `json:"confidence_score"`
	OutreachMessage string     `json:"pesan_penawaran"`
	Status          LeadStatus `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	SentAt          *time.Time `json:"sent_at,omitempty"`
}

func (l Lead) DedupKey() string {
	return DedupKey(l.Name, l.City)
}

func (l Lead) HasPhone() bool {
	return strings.TrimSpace(l.Phone) != ""
}

func (l Lead) HasMessage() bool {
	return strings.TrimSpace(l.OutreachMessage) != ""
}

// PhoneSuffixMatches reports whether the lead phone, with '-', ' ' and '+'
// removed, ends with suffix.
func (l Lead) PhoneSuffixMatches(suffix string) bool {
	if suffix == "" || !l.HasPhone() {
		return false
	}
	return strings.HasSuffix(StripPhone(l.Phone), suffix)
}

// StripPhone removes the separators people type into phone numbers.
func StripPhone(phone string) string {
	return strings.NewReplacer("-", "", " ", "", "+", "").Replace(phone)
}

// DedupKey builds the case-insensitive (name, city) identity of a lead.
func DedupKey(name, city string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + strings.ToLower(strings.TrimSpace(city))
}

// MessageLength counts characters, not bytes; templates carry emoji.
func MessageLength(s string) int {
	return utf8.RuneCountInString(s)
}

// RawLead is a candidate record produced by a lead source before it is persisted.
// Only Name and City are required.
type RawLead struct {
	Name            string  `json:"nama_sppg" yaml:"nama_sppg"`
	Address         string  `json:"alamat" yaml:"alamat"`
	Province        string  `json:"provinsi" yaml:"provinsi"`
	City            string  `json:"kab_kota" yaml:"kab_kota"`
	District        string  `json:"kecamatan" yaml:"kecamatan"`
	Village         string  `json:"desa" yaml:"desa"`
	Phone           string  `json:"phone" yaml:"phone"`
	ConfidenceScore float64 `json:"confidence_score" yaml:"confidence_score"`
}

// ToLead materializes a new NotContacted lead.
func (r RawLead) ToLead(id string, now time.Time) Lead {
	score := r.ConfidenceScore
	if score <= 0 {
		score = DefaultConfidenceScore
	}
	if score > 1 {
		score = 1
	}
	return Lead{
		ID:              id,
		Name:            strings.TrimSpace(r.Name),
		Address:         strings.TrimSpace(r.Address),
		Province:        strings.TrimSpace(r.Province),
		City:            strings.TrimSpace(r.City),
		District:        strings.TrimSpace(r.District),
		Village:         strings.TrimSpace(r.Village),
		Phone:           strings.TrimSpace(r.Phone),
		ConfidenceScore: score,
		Status:          LeadStatusNotContacted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

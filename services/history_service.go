package services

import (
	"strings"
	"time"

	"compensation-request-api/models"
)

// HistoryMatch is one prior occurrence of a work title in the collection.
type HistoryMatch struct {
	RequestID     string `json:"req_id"`
	Applicant     string `json:"applicant"`
	ApplicantName string `json:"applicant_name"`
	FiscalYear    string `json:"fiscal_year"`
	WorkTitle     string `json:"work_title"`
	WorkStatus    string `json:"work_status"`
	RequestStatus string `json:"request_status"`
}

// WorkHistory is the duplicate-history report for one work of the request
// under review.
type WorkHistory struct {
	WorkIndex   int            `json:"work_index"`
	Title       string         `json:"title"`
	SelfMatches []HistoryMatch `json:"self_matches"`
	PeerMatches []HistoryMatch `json:"peer_matches"`
	// OverTwoYears flags a publish date more than two years before the
	// review date; such works fall outside the claimable period.
	OverTwoYears bool `json:"over_two_years"`
}

// CheckSubmissionHistory scans every other request for works with the same
// title as each work of the given request. Matches by the same applicant
// (a prior claim on the same work) are separated from matches by other
// applicants (a shared work someone else already claimed).
func CheckSubmissionHistory(reqID string, now time.Time) ([]WorkHistory, error) {
	all, err := LoadRequests()
	if err != nil {
		return nil, err
	}

	subject := findRequest(all, reqID)
	if subject == nil {
		return nil, notFoundErr("ไม่พบข้อมูลคำขอ")
	}

	report := make([]WorkHistory, 0, len(subject.Works))
	for i, w := range subject.Works {
		entry := WorkHistory{
			WorkIndex:   i,
			Title:       w.Details.Title,
			SelfMatches: []HistoryMatch{},
			PeerMatches: []HistoryMatch{},
		}

		if published, ok := ParseFlexibleDate(w.Details.DatePublish); ok {
			entry.OverTwoYears = now.Sub(published) > 2*365*24*time.Hour
		}

		title := normalizeTitle(w.Details.Title)
		if title == "" {
			report = append(report, entry)
			continue
		}

		for j := range all {
			other := &all[j]
			if other.ID == subject.ID || other.Status == models.StatusCancelled {
				continue
			}
			for _, ow := range other.Works {
				if normalizeTitle(ow.Details.Title) != title {
					continue
				}
				match := HistoryMatch{
					RequestID:     other.ID,
					Applicant:     other.Applicant,
					ApplicantName: other.ApplicantName,
					FiscalYear:    other.FiscalYear,
					WorkTitle:     ow.Details.Title,
					WorkStatus:    ow.Status,
					RequestStatus: other.Status,
				}
				if other.Applicant == subject.Applicant {
					entry.SelfMatches = append(entry.SelfMatches, match)
				} else {
					entry.PeerMatches = append(entry.PeerMatches, match)
				}
			}
		}
		report = append(report, entry)
	}
	return report, nil
}

func normalizeTitle(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

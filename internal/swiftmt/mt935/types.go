// Package mt935 implements the rate change advice message (MT935): a
// repeating run of rate announcements, each either naming an account
// (field 25) or a free-format market identifier (field 23), followed
// by the effective date and new rate. No original-source reference
// implementation was retrieved for this message type; its shape
// follows the general repeating sub-sequence mechanism shared with
// mt107/mt101/mt104.
package mt935

import "github.com/deltran/swiftmt/internal/swiftmt/fields"

// RateChange is one rate announcement, identified either by account
// (field 25) or by free-format market identifier (field 23), never
// both.
type RateChange struct {
	Account *fields.Field25NoOption
	Market  *fields.Field23RateChange
	Date    fields.Field30
	Rate    fields.Field37H
}

// MT935 is a rate change advice, carrying one or more rate changes.
type MT935 struct {
	Field20 fields.Field20
	Changes []RateChange
	Field72 *fields.Field72
}

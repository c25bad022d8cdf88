package header

import "fmt"

// UserHeader is block 3: optional service tags and controls. Grounded
// on original_source/src/headers/mod.rs UserHeader, narrowed to the
// tags the distilled spec names (103, 108, 111, 113, 115, 119, 121,
// 165, 423, 424, 433, 434) plus 106 for completeness with the MIR shape
// block 2's output direction and block 5's trailer both reuse.
type UserHeader struct {
	ServiceIdentifier       string
	BankingPriority         string
	MessageUserReference    string
	ValidationFlag          string // STP, REMIT, RFDD, COV
	BalanceCheckpoint       *BalanceCheckpoint
	MessageInputReference   *MessageInputReference106
	RelatedReference        string
	ServiceTypeIdentifier   string
	UniqueEndToEndReference string // tag 121, UETR
	AddresseeInformation    string
	PaymentReleaseInfo      *CodeWithAdditionalInfo
	SanctionsScreeningInfo  *CodeWithAdditionalInfo
	PaymentControlsInfo     *CodeWithAdditionalInfo
}

// BalanceCheckpoint is tag 423's payload.
type BalanceCheckpoint struct {
	Date               string
	Time               string
	HundredthsOfSecond string
}

// MessageInputReference106 is tag 106's payload: a variant of the MIR
// shape with an explicit branch code component.
type MessageInputReference106 struct {
	Date           string
	LTIdentifier   string
	BranchCode     string
	SessionNumber  string
	SequenceNumber string
}

// CodeWithAdditionalInfo is the shared `3!a[/xx]`-style shape of tags
// 165, 433 and 434.
type CodeWithAdditionalInfo struct {
	Code           string
	AdditionalInfo string
	HasAdditional  bool
}

func parseCodeWithAdditionalInfo(value string) *CodeWithAdditionalInfo {
	if len(value) < 3 {
		return nil
	}
	c := &CodeWithAdditionalInfo{Code: value[0:3]}
	if len(value) > 4 && value[3] == '/' {
		c.AdditionalInfo = value[4:]
		c.HasAdditional = true
	}
	return c
}

func (c CodeWithAdditionalInfo) wire() string {
	if c.HasAdditional {
		return c.Code + "/" + c.AdditionalInfo
	}
	return c.Code
}

// ParseUserHeader parses block 3's raw `{tag:value}...` content.
func ParseUserHeader(block3 string) UserHeader {
	var h UserHeader
	if v, ok := extractTag(block3, "103"); ok {
		h.ServiceIdentifier = v
	}
	if v, ok := extractTag(block3, "113"); ok {
		h.BankingPriority = v
	}
	if v, ok := extractTag(block3, "108"); ok {
		h.MessageUserReference = v
	}
	if v, ok := extractTag(block3, "119"); ok {
		h.ValidationFlag = v
	}
	if v, ok := extractTag(block3, "423"); ok && len(v) >= 12 {
		bc := &BalanceCheckpoint{Date: v[0:6], Time: v[6:12]}
		if len(v) > 12 {
			bc.HundredthsOfSecond = v[12:]
		}
		h.BalanceCheckpoint = bc
	}
	if v, ok := extractTag(block3, "106"); ok && len(v) >= 28 {
		h.MessageInputReference = &MessageInputReference106{
			Date:           v[0:6],
			LTIdentifier:   v[6:18],
			BranchCode:     v[18:21],
			SessionNumber:  v[21:25],
			SequenceNumber: v[25:],
		}
	}
	if v, ok := extractTag(block3, "424"); ok {
		h.RelatedReference = v
	}
	if v, ok := extractTag(block3, "111"); ok {
		h.ServiceTypeIdentifier = v
	}
	if v, ok := extractTag(block3, "121"); ok {
		h.UniqueEndToEndReference = v
	}
	if v, ok := extractTag(block3, "115"); ok {
		h.AddresseeInformation = v
	}
	if v, ok := extractTag(block3, "165"); ok {
		h.PaymentReleaseInfo = parseCodeWithAdditionalInfo(v)
	}
	if v, ok := extractTag(block3, "433"); ok {
		h.SanctionsScreeningInfo = parseCodeWithAdditionalInfo(v)
	}
	if v, ok := extractTag(block3, "434"); ok {
		h.PaymentControlsInfo = parseCodeWithAdditionalInfo(v)
	}
	return h
}

// ToWire renders block 3 back to its `{tag:value}...` form, in the
// fixed tag order 103, 113, 108, 119, 423, 106, 424, 121, 111, 115,
// 434, 165, 433.
func (h UserHeader) ToWire() string {
	var b []byte
	add := func(tag, value string) {
		b = append(b, []byte(fmt.Sprintf("{%s:%s}", tag, value))...)
	}
	if h.ServiceIdentifier != "" {
		add("103", h.ServiceIdentifier)
	}
	if h.BankingPriority != "" {
		add("113", h.BankingPriority)
	}
	if h.MessageUserReference != "" {
		add("108", h.MessageUserReference)
	}
	if h.ValidationFlag != "" {
		add("119", h.ValidationFlag)
	}
	if h.BalanceCheckpoint != nil {
		bc := h.BalanceCheckpoint
		add("423", bc.Date+bc.Time+bc.HundredthsOfSecond)
	}
	if h.MessageInputReference != nil {
		r := h.MessageInputReference
		add("106", r.Date+r.LTIdentifier+r.BranchCode+r.SessionNumber+r.SequenceNumber)
	}
	if h.RelatedReference != "" {
		add("424", h.RelatedReference)
	}
	if h.UniqueEndToEndReference != "" {
		add("121", h.UniqueEndToEndReference)
	}
	if h.ServiceTypeIdentifier != "" {
		add("111", h.ServiceTypeIdentifier)
	}
	if h.AddresseeInformation != "" {
		add("115", h.AddresseeInformation)
	}
	if h.PaymentControlsInfo != nil {
		add("434", h.PaymentControlsInfo.wire())
	}
	if h.PaymentReleaseInfo != nil {
		add("165", h.PaymentReleaseInfo.wire())
	}
	if h.SanctionsScreeningInfo != nil {
		add("433", h.SanctionsScreeningInfo.wire())
	}
	return string(b)
}

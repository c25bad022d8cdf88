package mt103

import (
	"github.com/deltran/swiftmt/internal/swiftmt/primitives"
	"github.com/deltran/swiftmt/internal/swiftmt/validate"
)

// validBankOpCodes are the legal field 23B codes for MT103.
var validBankOpCodes = map[string]bool{"CRED": true, "CRTS": true, "SPAY": true, "SPRI": true, "SSTD": true}

// valid23ECodes are the legal field 23E instruction codes for MT103.
var valid23ECodes = map[string]bool{
	"CHQB": true, "CORT": true, "HOLD": true, "INTC": true, "PHOB": true,
	"PHOI": true, "PHON": true, "REPA": true, "SDVA": true, "TELB": true,
	"TELE": true, "TELI": true,
}

var remitSPRIAllowed23E = map[string]bool{"SDVA": true, "TELB": true, "PHOB": true, "INTC": true}

func contentError(code, tag, message string) primitives.SwiftError {
	return primitives.SwiftError{Kind: primitives.KindSwiftValidation, Code: code, Tag: tag, Message: message}
}

// Rules is the full ordered set of MT103 network validation rules,
// grounded on mt103.rs's validate_network_rules dispatch order.
var Rules = []validate.Rule[MT103]{
	{Name: "field_23b_code", Check: validateField23BCode},
	{Name: "field_23e_codes", Check: validateField23ECodes},
	{Name: "c1_currency_exchange", Check: validateC1CurrencyExchange},
	{Name: "c03_amount_decimals", Check: validateC03AmountDecimals},
	{Name: "c3_bank_op_instruction_codes", Check: validateC3BankOpInstructionCodes},
	{Name: "c4_third_reimbursement", Check: validateC4ThirdReimbursement},
	{Name: "c5_intermediary", Check: validateC5Intermediary},
	{Name: "c6_field_56_restrictions", Check: validateC6Field56Restrictions},
	{Name: "c7_charges", Check: validateC7Charges},
	{Name: "c8_charges_instructed_amount", Check: validateC8ChargesInstructedAmount},
	{Name: "c9_receiver_charges_currency", Check: validateC9ReceiverChargesCurrency},
	{Name: "c13_chqb_beneficiary_account", Check: validateC13ChqbBeneficiaryAccount},
	{Name: "c16_teli_phoi_restriction", Check: validateC16TeliPhoiRestriction},
	{Name: "c17_tele_phon_restriction", Check: validateC17TelePhonRestriction},
}

// ValidateNetworkRules runs every MT103 network validation rule.
func (m MT103) ValidateNetworkRules(stopOnFirstError bool) []primitives.SwiftError {
	return validate.Run(m, Rules, stopOnFirstError)
}

// T36: bank operation code must be one of the MT103-legal set.
func validateField23BCode(m MT103) []primitives.SwiftError {
	if !validBankOpCodes[m.Field23B.InstructionCode] {
		return []primitives.SwiftError{contentError("T36", "23B", "invalid bank operation code for MT103")}
	}
	return nil
}

// T48/D97/E46/D98/D67: instruction code validity, additional
// information use, duplicates, canonical order and forbidden pairings
// among field 23E occurrences.
func validateField23ECodes(m MT103) []primitives.SwiftError {
	var errs []primitives.SwiftError
	present := map[string]bool{}
	canonicalOrder := map[string]int{
		"SDVA": 0, "INTC": 1, "REPA": 2, "CORT": 3, "HOLD": 4, "CHQB": 5,
		"PHOB": 6, "TELB": 7, "PHON": 8, "TELE": 9, "PHOI": 10, "TELI": 11,
	}
	lastRank := -1
	for _, e := range m.Field23E {
		if !valid23ECodes[e.InstructionCode] {
			errs = append(errs, contentError("T48", "23E", "invalid instruction code for MT103"))
			continue
		}
		if present[e.InstructionCode] {
			errs = append(errs, contentError("E46", "23E", "instruction code "+e.InstructionCode+" must not be repeated"))
		}
		if rank := canonicalOrder[e.InstructionCode]; rank < lastRank {
			errs = append(errs, contentError("D98", "23E", "field 23E codes are not in canonical order"))
		} else {
			lastRank = rank
		}
		if e.HasAdditional && !codesWithAdditionalInfo[e.InstructionCode] {
			errs = append(errs, contentError("D97", "23E", "additional information not allowed for code "+e.InstructionCode))
		}
		present[e.InstructionCode] = true
	}
	invalidPairs := [][2]string{
		{"SDVA", "HOLD"}, {"SDVA", "CHQB"},
		{"INTC", "HOLD"}, {"INTC", "CHQB"},
		{"REPA", "HOLD"}, {"REPA", "CHQB"}, {"REPA", "CORT"},
		{"CORT", "HOLD"}, {"CORT", "CHQB"},
		{"HOLD", "CHQB"},
		{"PHOB", "TELB"}, {"PHON", "TELE"}, {"PHOI", "TELI"},
	}
	for _, pair := range invalidPairs {
		if present[pair[0]] && present[pair[1]] {
			errs = append(errs, contentError("D67", "23E", "forbidden combination of field 23E codes: "+pair[0]+" and "+pair[1]))
		}
	}
	return errs
}

// C1/D75: 33B currency differs from 32A currency implies 36 mandatory,
// and vice versa.
func validateC1CurrencyExchange(m MT103) []primitives.SwiftError {
	if m.Field33B != nil {
		if m.Field33B.Currency != m.Field32A.Currency {
			if m.Field36 == nil {
				return []primitives.SwiftError{contentError("D75", "36", "field 36 is mandatory when field 33B currency differs from field 32A")}
			}
		} else if m.Field36 != nil {
			return []primitives.SwiftError{contentError("D75", "36", "field 36 is not allowed when field 33B currency equals field 32A")}
		}
	} else if m.Field36 != nil {
		return []primitives.SwiftError{contentError("D75", "36", "field 36 is not allowed when field 33B is not present")}
	}
	return nil
}

// C03: the amount in field 32A, and in field 33B when present, must
// not carry more fractional digits than its currency's ISO 4217
// precision allows. Checked at validation time, not parse time, so a
// structurally well-formed but over-precise amount still parses.
func validateC03AmountDecimals(m MT103) []primitives.SwiftError {
	var errs []primitives.SwiftError
	if err := primitives.ValidateAmountDecimals(m.Field32A.Amount, m.Field32A.Currency); err != nil {
		se := err.(*primitives.SwiftError)
		se.Tag = "32A"
		errs = append(errs, *se)
	}
	if m.Field33B != nil {
		if err := primitives.ValidateAmountDecimals(m.Field33B.Amount, m.Field33B.Currency); err != nil {
			se := err.(*primitives.SwiftError)
			se.Tag = "33B"
			errs = append(errs, *se)
		}
	}
	return errs
}

// C3/E01/E02: field 23B restricts which 23E codes are allowed.
func validateC3BankOpInstructionCodes(m MT103) []primitives.SwiftError {
	var errs []primitives.SwiftError
	switch m.Field23B.InstructionCode {
	case "SPRI":
		for _, e := range m.Field23E {
			if !remitSPRIAllowed23E[e.InstructionCode] {
				errs = append(errs, contentError("E01", "23E", "field 23E code not allowed when field 23B is SPRI"))
			}
		}
	case "SSTD", "SPAY":
		if len(m.Field23E) > 0 {
			errs = append(errs, contentError("E02", "23E", "field 23E must not be used when field 23B is SSTD or SPAY"))
		}
	}
	return errs
}

// C4/E06: field 55 present implies both 53 and 54 present.
func validateC4ThirdReimbursement(m MT103) []primitives.SwiftError {
	if m.HasField55() && (!m.HasField53() || !m.HasField54()) {
		return []primitives.SwiftError{contentError("E06", "55a", "fields 53a and 54a are mandatory when field 55a is present")}
	}
	return nil
}

// C5/C81: field 56 present implies field 57 present.
func validateC5Intermediary(m MT103) []primitives.SwiftError {
	if m.HasField56() && !m.HasField57() {
		return []primitives.SwiftError{contentError("C81", "57a", "field 57a is mandatory when field 56a is present")}
	}
	return nil
}

// C6/E16: field 23B SPRI forbids field 56.
func validateC6Field56Restrictions(m MT103) []primitives.SwiftError {
	if m.Field23B.InstructionCode == "SPRI" && m.HasField56() {
		return []primitives.SwiftError{contentError("E16", "56a", "field 56a must not be present when field 23B is SPRI")}
	}
	return nil
}

// C7/E13/D50/E15: charges-code-dependent restrictions on 71F/71G.
func validateC7Charges(m MT103) []primitives.SwiftError {
	var errs []primitives.SwiftError
	switch m.Field71A.Code {
	case "OUR":
		if m.HasField71F() {
			errs = append(errs, contentError("E13", "71F", "field 71F is not allowed when field 71A is OUR"))
		}
	case "SHA":
		if m.HasField71G() {
			errs = append(errs, contentError("D50", "71G", "field 71G is not allowed when field 71A is SHA"))
		}
	case "BEN":
		if !m.HasField71F() {
			errs = append(errs, contentError("E15", "71F", "at least one field 71F is mandatory when field 71A is BEN"))
		}
		if m.HasField71G() {
			errs = append(errs, contentError("E15", "71G", "field 71G is not allowed when field 71A is BEN"))
		}
	}
	return errs
}

// C8/D51: any 71F or 71G implies field 33B is mandatory.
func validateC8ChargesInstructedAmount(m MT103) []primitives.SwiftError {
	if (m.HasField71F() || m.HasField71G()) && m.Field33B == nil {
		return []primitives.SwiftError{contentError("D51", "33B", "field 33B is mandatory when field 71F or 71G is present")}
	}
	return nil
}

// C9/C02: field 71G currency must equal field 32A currency.
func validateC9ReceiverChargesCurrency(m MT103) []primitives.SwiftError {
	if m.Field71G != nil && m.Field71G.Currency != m.Field32A.Currency {
		return []primitives.SwiftError{contentError("C02", "71G", "currency code in field 71G must match field 32A")}
	}
	return nil
}

// C13/E18: field 23E CHQB forbids an account subfield in field 59.
func validateC13ChqbBeneficiaryAccount(m MT103) []primitives.SwiftError {
	if m.Has23ECode("CHQB") && m.Field59.HasAccount() {
		return []primitives.SwiftError{contentError("E18", "59a", "account subfield in field 59a is not allowed when field 23E contains CHQB")}
	}
	return nil
}

// C16/E44: TELI/PHOI codes require field 56 to be present.
func validateC16TeliPhoiRestriction(m MT103) []primitives.SwiftError {
	var errs []primitives.SwiftError
	if !m.HasField56() {
		for _, e := range m.Field23E {
			if e.InstructionCode == "TELI" || e.InstructionCode == "PHOI" {
				errs = append(errs, contentError("E44", "23E", "code "+e.InstructionCode+" is not allowed when field 56a is not present"))
			}
		}
	}
	return errs
}

// C17/E45: TELE/PHON codes require field 57 to be present.
func validateC17TelePhonRestriction(m MT103) []primitives.SwiftError {
	var errs []primitives.SwiftError
	if !m.HasField57() {
		for _, e := range m.Field23E {
			if e.InstructionCode == "TELE" || e.InstructionCode == "PHON" {
				errs = append(errs, contentError("E45", "23E", "code "+e.InstructionCode+" is not allowed when field 57a is not present"))
			}
		}
	}
	return errs
}

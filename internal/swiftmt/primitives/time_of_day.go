package primitives

// TimeOfDay is a SWIFT wire time value, kept separate from time.Time
// since SWIFT times carry no date or timezone of their own.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeHHMM parses a 4 digit time (HHMM).
func ParseTimeHHMM(s string) (TimeOfDay, error) {
	if len(s) != 4 || !isAllDigits(s) {
		return TimeOfDay{}, newFormatError("T38", "", "time", "HHMM", s,
			"Time must be exactly 4 digits")
	}
	h, m := atoi2(s[0:2]), atoi2(s[2:4])
	if h > 23 || m > 59 {
		return TimeOfDay{}, newFormatError("T38", "", "time", "valid HHMM", s,
			"Time does not name a valid hour/minute")
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}

// ParseTimeHHMMSS parses a 6 digit time (HHMMSS).
func ParseTimeHHMMSS(s string) (TimeOfDay, error) {
	if len(s) != 6 || !isAllDigits(s) {
		return TimeOfDay{}, newFormatError("T38", "", "time", "HHMMSS", s,
			"Time must be exactly 6 digits")
	}
	h, m, sec := atoi2(s[0:2]), atoi2(s[2:4]), atoi2(s[4:6])
	if h > 23 || m > 59 || sec > 59 {
		return TimeOfDay{}, newFormatError("T38", "", "time", "valid HHMMSS", s,
			"Time does not name a valid hour/minute/second")
	}
	return TimeOfDay{Hour: h, Minute: m, Second: sec}, nil
}

// DateTime is a combined SWIFT date/time value used by fields such as
// 13C (YYMMDDHHMM).
type DateTime struct {
	Year, Month, Day int
	Hour, Minute     int
}

// ParseDateTimeYYMMDDHHMM parses a 10 digit combined date/time value,
// applying the same YY cutover rule as ParseDateYYMMDD.
func ParseDateTimeYYMMDDHHMM(s string) (DateTime, error) {
	if len(s) != 10 || !isAllDigits(s) {
		return DateTime{}, newFormatError("T38", "", "datetime", "YYMMDDHHMM", s,
			"Datetime must be exactly 10 digits")
	}
	date, err := ParseDateYYMMDD(s[0:6])
	if err != nil {
		return DateTime{}, err
	}
	tod, err := ParseTimeHHMM(s[6:10])
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{
		Year: date.Year(), Month: int(date.Month()), Day: date.Day(),
		Hour: tod.Hour, Minute: tod.Minute,
	}, nil
}

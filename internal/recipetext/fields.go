package recipetext

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/recipekit/internal/domain"
)

var (
	hourPattern   = regexp.MustCompile(`(?i)^\s*(\d+(?:[.,]\d+)?)\s*(?:hours?|hrs?)\b`)
	minutePattern = regexp.MustCompile(`(?i)^\s*(\d+(?:[.,]\d+)?)\s*(?:minutes?|mins?)\s*$`)
)

var (
	errNoNumber = errors.New("no number found")
	errNegative = errors.New("must not be negative")
)

// parseServings reads the leading whitespace-delimited token as a positive
// integer: "4 servings" -> 4.
func parseServings(l textLine) (int, error) {
	fields := strings.Fields(l.text)
	if len(fields) == 0 {
		return 0, &domain.ParseError{Field: "servings", Line: l.no, Value: l.text, Err: errNoNumber}
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, &domain.ParseError{Field: "servings", Line: l.no, Value: fields[0], Err: err}
	}
	if n <= 0 {
		return 0, &domain.ParseError{Field: "servings", Line: l.no, Value: fields[0], Err: errors.New("must be positive")}
	}
	return n, nil
}

// parsePrepTime skips the first labelWidth characters of the line and
// normalizes the remaining duration expression to minutes.
func parsePrepTime(l textLine, labelWidth int) (int, error) {
	runes := []rune(l.text)
	if len(runes) <= labelWidth {
		return 0, &domain.ParseError{Field: "preptime", Line: l.no, Value: l.text, Err: errNoNumber}
	}
	expr := string(runes[labelWidth:])

	minutes, err := parseDuration(expr)
	if err != nil {
		return 0, &domain.ParseError{Field: "preptime", Line: l.no, Value: strings.TrimSpace(expr), Err: err}
	}
	return minutes, nil
}

// parseDuration handles "1 hour 30 minutes", "1 hr 30 mins", "2 hours",
// "1.5 hours", "45 minutes" and a bare "45". Anything else left over is an
// error rather than being ignored.
func parseDuration(expr string) (int, error) {
	if loc := hourPattern.FindStringSubmatchIndex(expr); loc != nil {
		hours, err := parseDecimal(expr[loc[2]:loc[3]])
		if err != nil {
			return 0, err
		}
		total := hours * 60

		if rest := expr[loc[1]:]; strings.TrimSpace(rest) != "" {
			mins, err := parseMinutes(rest)
			if err != nil {
				return 0, err
			}
			total += mins
		}
		return int(math.Round(total)), nil
	}

	mins, err := parseMinutes(expr)
	if err != nil {
		return 0, err
	}
	return int(math.Round(mins)), nil
}

// parseMinutes accepts exactly "N minute(s)", "N min(s)" or a bare "N".
func parseMinutes(s string) (float64, error) {
	if m := minutePattern.FindStringSubmatch(s); m != nil {
		return parseDecimal(m[1])
	}
	bare := strings.TrimSpace(s)
	if bare == "" {
		return 0, errNoNumber
	}
	return parseDecimal(bare)
}

// parseIngredient splits a marker line into marker, quantity, unit, name.
func parseIngredient(l textLine, marker string) (domain.Ingredient, error) {
	fields := strings.Split(strings.TrimLeft(l.text, " "), "\t")
	if len(fields) != 4 {
		return domain.Ingredient{}, &domain.MalformedRecipeError{
			Line:   l.no,
			Reason: "ingredient line needs 4 tab-separated fields (marker, quantity, unit, name), got " + strconv.Itoa(len(fields)),
		}
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if fields[0] != marker {
		return domain.Ingredient{}, &domain.MalformedRecipeError{
			Line:   l.no,
			Reason: "unexpected text after marker: " + strconv.Quote(fields[0]),
		}
	}
	if fields[3] == "" {
		return domain.Ingredient{}, &domain.MalformedRecipeError{Line: l.no, Reason: "ingredient name is empty"}
	}

	qty, err := parseQuantity(fields[1])
	if err != nil {
		return domain.Ingredient{}, &domain.ParseError{Field: "quantity", Line: l.no, Value: fields[1], Err: err}
	}

	return domain.Ingredient{Name: fields[3], Quantity: qty, Unit: fields[2]}, nil
}

// parseQuantity accepts decimals ("200", "0.5", "1,5"), fractions ("1/2")
// and mixed numbers ("1 1/2").
func parseQuantity(s string) (float64, error) {
	parts := strings.Fields(s)
	switch len(parts) {
	case 1:
		return parseAmount(parts[0])
	case 2:
		whole, err := parseDecimal(parts[0])
		if err != nil {
			return 0, err
		}
		if !strings.Contains(parts[1], "/") {
			return 0, errors.New("expected a fraction after the whole number")
		}
		frac, err := parseFraction(parts[1])
		if err != nil {
			return 0, err
		}
		return whole + frac, nil
	default:
		return 0, errNoNumber
	}
}

func parseAmount(s string) (float64, error) {
	if strings.Contains(s, "/") {
		return parseFraction(s)
	}
	return parseDecimal(s)
}

func parseFraction(s string) (float64, error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return 0, errNoNumber
	}
	n, err := parseDecimal(num)
	if err != nil {
		return 0, err
	}
	d, err := parseDecimal(den)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, errors.New("division by zero")
	}
	return n / d, nil
}

// parseDecimal parses a finite, non-negative number. A decimal comma is
// accepted.
func parseDecimal(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNoNumber
	}
	if v < 0 {
		return 0, errNegative
	}
	return v, nil
}

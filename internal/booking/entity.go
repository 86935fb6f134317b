package booking

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avstrong/vacaystar/internal/validate"
)

// Header is the first line of a non-empty ledger.
var Header = []string{ //nolint:gochecknoglobals
	"Name", "Contact", "Email", "Accommodation", "Days", "Check-in", "Check-out", "Discount", "Total Price",
}

// RecordFields is the column count of a well-formed ledger row.
const RecordFields = 9

type CatalogEntry struct {
	Name          string
	NightlyRate   decimal.Decimal
	ProcessingFee decimal.Decimal
	DiscountRate  decimal.Decimal
}

type Catalog []CatalogEntry

func DefaultCatalog() Catalog {
	entry := func(name, rate, fee, discount string) CatalogEntry {
		return CatalogEntry{
			Name:          name,
			NightlyRate:   decimal.RequireFromString(rate),
			ProcessingFee: decimal.RequireFromString(fee),
			DiscountRate:  decimal.RequireFromString(discount),
		}
	}

	return Catalog{
		entry("Imperial Lodge", "350.00", "4.00", "0.10"),
		entry("Sunshine Apt.", "280.00", "3.50", "0.10"),
		entry("Standard Cabin", "200.00", "3.00", "0.05"),
		entry("Rustic Shed", "150.00", "2.50", "0.05"),
		entry("Classic Caravan", "90.00", "2.00", "0.05"),
	}
}

// Lookup returns the entry at the 1-based index shown to the user.
func (c Catalog) Lookup(index int) (CatalogEntry, error) {
	if index < 1 || index > len(c) {
		return CatalogEntry{}, fmt.Errorf("accommodation %d of %d: %w", index, len(c), ErrUnknownAccommodation)
	}

	return c[index-1], nil
}

// Context is the data collected by one booking session.
type Context struct {
	Name               string
	Contact            string
	Email              string
	AccommodationIndex int
	AccommodationName  string
	CheckIn            time.Time
	CheckOut           time.Time
	StayLengthDays     int
}

func (bc *Context) datesSet() bool {
	return !bc.CheckIn.IsZero() && !bc.CheckOut.IsZero()
}

func (bc *Context) clearDates() {
	bc.CheckIn = time.Time{}
	bc.CheckOut = time.Time{}
	bc.StayLengthDays = 0
}

// Record is one confirmed booking as persisted in the ledger.
type Record struct {
	Name          string
	Contact       string
	Email         string
	Accommodation string
	Days          int
	CheckIn       time.Time
	CheckOut      time.Time
	Discount      decimal.Decimal
	Total         decimal.Decimal
}

// Entry is a ledger record with its 1-based position among data rows.
type Entry struct {
	Position int
	Record   Record
}

func (r Record) Fields() []string {
	return []string{
		r.Name,
		r.Contact,
		r.Email,
		r.Accommodation,
		strconv.Itoa(r.Days),
		r.CheckIn.Format(validate.DateLayout),
		r.CheckOut.Format(validate.DateLayout),
		r.Discount.StringFixed(2),
		r.Total.StringFixed(2),
	}
}

// ParseRecord decodes the columns of one ledger row.
func ParseRecord(fields []string) (Record, error) {
	if len(fields) != RecordFields {
		return Record{}, fmt.Errorf("%d columns: %w", len(fields), ErrMalformedRecord)
	}

	days, err := strconv.Atoi(fields[4])
	if err != nil {
		return Record{}, fmt.Errorf("days %q: %w", fields[4], ErrMalformedRecord)
	}

	checkIn, err := time.Parse(validate.DateLayout, fields[5])
	if err != nil {
		return Record{}, fmt.Errorf("check-in %q: %w", fields[5], ErrMalformedRecord)
	}

	checkOut, err := time.Parse(validate.DateLayout, fields[6])
	if err != nil {
		return Record{}, fmt.Errorf("check-out %q: %w", fields[6], ErrMalformedRecord)
	}

	discount, err := decimal.NewFromString(fields[7])
	if err != nil {
		return Record{}, fmt.Errorf("discount %q: %w", fields[7], ErrMalformedRecord)
	}

	total, err := decimal.NewFromString(fields[8])
	if err != nil {
		return Record{}, fmt.Errorf("total %q: %w", fields[8], ErrMalformedRecord)
	}

	return Record{
		Name:          fields[0],
		Contact:       fields[1],
		Email:         fields[2],
		Accommodation: fields[3],
		Days:          days,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Discount:      discount,
		Total:         total,
	}, nil
}

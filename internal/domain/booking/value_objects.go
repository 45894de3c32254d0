package booking

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	ErrNegativeMoney      = errors.New("money cannot be negative")
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrInvalidFeePercent  = errors.New("fee percent must be between 0 and 100")
	ErrInvalidSessions    = errors.New("session count must be at least 1")
	ErrRemainingExceeded  = errors.New("sessions remaining cannot exceed total sessions")
	ErrEmptyTransactionID = errors.New("payment transaction id is required")
	ErrEmptyNumber        = errors.New("booking number is required")
)

// Money is an amount in the currency's minor unit (cents).
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{cents: cents}, nil
}

func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

// roundHalfAway rounds to the nearest cent, halves away from zero.
func roundHalfAway(v float64) int64 {
	return int64(math.Round(v))
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

type PackageType string

const (
	PackageSingle PackageType = "single"
	Package3      PackageType = "3-pack"
	Package5      PackageType = "5-pack"
	Package10     PackageType = "10-pack"
	PackageCamp   PackageType = "camp"
)

var packageSessions = map[PackageType]int{
	PackageSingle: 1,
	Package3:      3,
	Package5:      5,
	Package10:     10,
	PackageCamp:   1,
}

// ParsePackageType falls back to single for unknown values.
func ParsePackageType(s string) PackageType {
	p := PackageType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := packageSessions[p]; !ok {
		return PackageSingle
	}
	return p
}

func (p PackageType) Sessions() int {
	if n, ok := packageSessions[p]; ok {
		return n
	}
	return 1
}

func (p PackageType) IsMultiSession() bool {
	return p.Sessions() > 1
}

func (p PackageType) String() string {
	return string(p)
}

type Schedule struct {
	Date      string
	StartTime string
	Location  string
}

func (s Schedule) IsEmpty() bool {
	return s.Date == "" && s.StartTime == "" && s.Location == ""
}

type Number struct {
	value string
}

func NewNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}, ErrEmptyNumber
	}
	return Number{value: strings.ToUpper(s)}, nil
}

func (n Number) String() string { return n.value }

type EscrowState string

const (
	EscrowHeld     EscrowState = "held"
	EscrowReleased EscrowState = "released"
	EscrowRefunded EscrowState = "refunded"
)

// DefaultCreditValidity is how long package credits stay usable.
const DefaultCreditValidity = 365 * 24 * time.Hour

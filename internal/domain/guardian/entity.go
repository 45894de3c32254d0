package guardian

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrNotOwned     = errors.New("participant belongs to another guardian")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail lowercases the address so lookups are case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string { return e.value }

type Guardian struct {
	id        uuid.UUID
	name      string
	email     Email
	phone     string
	userID    *uuid.UUID
	createdAt time.Time
}

func NewGuardian(name string, email Email, phone string, userID *uuid.UUID, now time.Time) (*Guardian, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		// checkout forms sometimes omit the contact name; fall back to the mailbox
		name = strings.SplitN(email.Value(), "@", 2)[0]
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Guardian{
		id:        uuid.New(),
		name:      name,
		email:     email,
		phone:     strings.TrimSpace(phone),
		userID:    userID,
		createdAt: now,
	}, nil
}

func ReconstructGuardian(id uuid.UUID, name, email, phone string, userID *uuid.UUID, createdAt time.Time) *Guardian {
	return &Guardian{
		id:        id,
		name:      name,
		email:     Email{value: email},
		phone:     phone,
		userID:    userID,
		createdAt: createdAt,
	}
}

func (g *Guardian) ID() uuid.UUID        { return g.id }
func (g *Guardian) Name() string         { return g.name }
func (g *Guardian) Email() Email         { return g.email }
func (g *Guardian) Phone() string        { return g.phone }
func (g *Guardian) UserID() *uuid.UUID   { return g.userID }
func (g *Guardian) CreatedAt() time.Time { return g.createdAt }

type Participant struct {
	id         uuid.UUID
	guardianID uuid.UUID
	firstName  string
	lastName   string
	createdAt  time.Time
}

func NewParticipant(guardianID uuid.UUID, firstName, lastName string, now time.Time) (*Participant, error) {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		return nil, ErrEmptyName
	}
	return &Participant{
		id:         uuid.New(),
		guardianID: guardianID,
		firstName:  firstName,
		lastName:   strings.TrimSpace(lastName),
		createdAt:  now,
	}, nil
}

func ReconstructParticipant(id, guardianID uuid.UUID, firstName, lastName string, createdAt time.Time) *Participant {
	return &Participant{
		id:         id,
		guardianID: guardianID,
		firstName:  firstName,
		lastName:   lastName,
		createdAt:  createdAt,
	}
}

// OwnedBy reports ErrNotOwned when the participant is linked to a different guardian.
func (p *Participant) OwnedBy(guardianID uuid.UUID) error {
	if p.guardianID != guardianID {
		return ErrNotOwned
	}
	return nil
}

func (p *Participant) ID() uuid.UUID         { return p.id }
func (p *Participant) GuardianID() uuid.UUID { return p.guardianID }
func (p *Participant) FirstName() string     { return p.firstName }
func (p *Participant) LastName() string      { return p.lastName }
func (p *Participant) CreatedAt() time.Time  { return p.createdAt }

package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yeremiapane/order-management-api/models"
	"github.com/yeremiapane/order-management-api/utils"
)

type LoginService struct {
	DB *gorm.DB
}

func NewLoginService(db *gorm.DB) *LoginService {
	return &LoginService{DB: db}
}

// probe is one credential table the login scan can resolve against.
type probe struct {
	kind   string
	lookup func(identifier string) (id uint, digest string, found bool, err error)
}

// Login resolves an identifier/password pair to a principal kind. The four
// credential tables are probed in fixed priority order; the first record
// that exists and verifies wins. A record that exists with a non-matching
// password does not stop the scan, it only matters once every kind has been
// tried. Read-only, never touches a stored hash.
func (ls *LoginService) Login(identifier, password string) (string, uint, error) {
	probes := []probe{
		{kind: "admin", lookup: func(v string) (uint, string, bool, error) {
			var m models.Admin
			return ls.firstBy(&m, "username", v, func() (uint, string) { return m.ID, m.Password })
		}},
		{kind: "manager", lookup: func(v string) (uint, string, bool, error) {
			var m models.Manager
			return ls.firstBy(&m, "username", v, func() (uint, string) { return m.ID, m.Password })
		}},
		{kind: "staff", lookup: func(v string) (uint, string, bool, error) {
			var m models.Staff
			return ls.firstBy(&m, "mail", v, func() (uint, string) { return m.ID, m.Password })
		}},
		{kind: "customer", lookup: func(v string) (uint, string, bool, error) {
			var m models.Customer
			return ls.firstBy(&m, "mail", v, func() (uint, string) { return m.ID, m.Password })
		}},
	}

	anyFound := false
	for _, p := range probes {
		id, digest, found, err := p.lookup(identifier)
		if err != nil {
			return "", 0, err
		}
		if !found {
			continue
		}
		anyFound = true
		if utils.CheckPasswordHash(password, digest) {
			return p.kind, id, nil
		}
	}

	if !anyFound {
		return "", 0, &NotFoundError{Resource: "User", Field: "username or mail", Value: identifier}
	}
	return "", 0, ErrInvalidCredentials
}

func (ls *LoginService) firstBy(dest interface{}, column, value string, extract func() (uint, string)) (uint, string, bool, error) {
	err := ls.DB.Where(column+" = ?", value).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, "", false, nil
	}
	if err != nil {
		return 0, "", false, err
	}
	id, digest := extract()
	return id, digest, true, nil
}

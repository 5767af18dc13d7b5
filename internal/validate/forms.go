package validate

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"droneshop/internal/domain"
)

const maxCharField = 255

// OrderFields lists the only inputs an order form reads. The client, the
// drone and the creation time are assigned by the server.
var OrderFields = []string{"country", "city", "address", "number_of_phone"}

// OrderForm carries the raw submitted values back to the template together
// with any field errors.
type OrderForm struct {
	Country       string
	City          string
	Address       string
	NumberOfPhone string
	Errors        FieldErrors
}

// NewOrderForm reads the order fields through get, typically fiber's
// FormValue, and ignores everything else.
func NewOrderForm(get func(key string) string) OrderForm {
	return OrderForm{
		Country:       get("country"),
		City:          get("city"),
		Address:       get("address"),
		NumberOfPhone: get("number_of_phone"),
	}
}

// Validate returns the cleaned order details, or FieldErrors. The form keeps
// the errors for re-rendering.
func (f *OrderForm) Validate() (domain.OrderDetails, error) {
	errs := FieldErrors{}
	var out domain.OrderDetails

	country := strings.TrimSpace(f.Country)
	if country == "" {
		out.Country = domain.DefaultCountry
	} else if c, ok := domain.ParseCountry(country); ok {
		out.Country = c
	} else {
		errs["country"] = "Select a valid choice."
	}

	out.City = requiredText(errs, "city", f.City)
	out.Address = requiredText(errs, "address", f.Address)

	phone := strings.TrimSpace(f.NumberOfPhone)
	if phone == "" {
		errs["number_of_phone"] = "This field is required."
	} else if n, err := strconv.ParseInt(phone, 10, 64); err != nil {
		errs["number_of_phone"] = "Enter a whole number."
	} else {
		out.NumberOfPhone = n
	}

	if len(errs) > 0 {
		f.Errors = errs
		return domain.OrderDetails{}, errs
	}
	f.Errors = nil
	return out, nil
}

func requiredText(errs FieldErrors, field, raw string) string {
	s := strings.TrimSpace(raw)
	switch {
	case s == "":
		errs[field] = "This field is required."
	case utf8.RuneCountInString(s) > maxCharField:
		errs[field] = "Ensure this value has at most 255 characters."
	}
	return s
}

// RegistrationForm mirrors the sign-up page.
type RegistrationForm struct {
	Username  string
	Email     string
	Password1 string
	Password2 string
	Errors    FieldErrors
}

func NewRegistrationForm(get func(key string) string) RegistrationForm {
	return RegistrationForm{
		Username:  get("username"),
		Email:     get("email"),
		Password1: get("password1"),
		Password2: get("password2"),
	}
}

// Registration is the cleaned result of a valid RegistrationForm.
type Registration struct {
	Username string
	Email    string
	Password string
}

func (f *RegistrationForm) Validate() (Registration, error) {
	errs := FieldErrors{}
	var out Registration

	if u, ok := Username(f.Username); !ok {
		errs["username"] = "Enter a valid username: up to 150 letters, digits and @/./+/-/_ only."
	} else {
		out.Username = u
	}
	if strings.TrimSpace(f.Email) != "" {
		if e, ok := Email(f.Email); !ok {
			errs["email"] = "Enter a valid email address."
		} else {
			out.Email = e
		}
	}
	if !Password(f.Password1) {
		errs["password1"] = "Use 8-64 characters with upper and lower case letters, a digit and a symbol."
	} else if f.Password1 != f.Password2 {
		errs["password2"] = "The two password fields didn't match."
	} else {
		out.Password = f.Password1
	}

	// Never echo passwords back into the page.
	f.Password1, f.Password2 = "", ""
	if len(errs) > 0 {
		f.Errors = errs
		return Registration{}, errs
	}
	f.Errors = nil
	return out, nil
}

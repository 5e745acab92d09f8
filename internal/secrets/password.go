package secrets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// “Service” groups your app’s secrets in the OS keychain.
	KeyringService = "leadscout"
)

// GetLinkedInPassword looks up the stored password for email, so the control
// panel can start a run without the password in the request body.
func GetLinkedInPassword(email string) (string, error) {
	if strings.TrimSpace(email) != "" {
		pw, err := keyring.Get(KeyringService, linkedInAccount(email))
		if err == nil && strings.TrimSpace(pw) != "" {
			return pw, nil
		}
	}

	return "", errors.New("LinkedIn password not found (set it in keychain or pass it in the request)")
}

func SetLinkedInPassword(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("email is empty")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, linkedInAccount(email), password)
}

func DeleteLinkedInPassword(email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("email is empty")
	}
	return keyring.Delete(KeyringService, linkedInAccount(email))
}

func linkedInAccount(email string) string {
	return fmt.Sprintf("leadscout:linkedin:%s", strings.ToLower(strings.TrimSpace(email)))
}

package application

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/bnema/webclicker/internal/domain"
	"github.com/bnema/webclicker/internal/ports"
)

type ProfileService struct {
	profiles ports.ProfileRepository
	secrets  ports.SecretStore
}

func NewProfileService(profiles ports.ProfileRepository, secrets ports.SecretStore) *ProfileService {
	return &ProfileService{profiles: profiles, secrets: secrets}
}

// Save stores the profile. A non-empty password goes to the secret store and
// the profile keeps only a reference to it; an empty password keeps whatever
// reference the profile already had.
func (s *ProfileService) Save(ctx context.Context, profile domain.Profile, password string) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	existing, err := s.profiles.GetByName(ctx, profile.Name)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			return fmt.Errorf("get profile by name: %w", err)
		}
		existing = domain.Profile{}
	}

	if password == "" {
		profile.PasswordRef = existing.PasswordRef
		if err := s.profiles.Save(ctx, profile); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		return nil
	}

	secretKey := domain.PasswordSecretKey(profile.Name)
	var previousPassword string
	if existing.PasswordRef == secretKey {
		previousPassword, err = s.secrets.Get(ctx, secretKey)
		if err != nil {
			return fmt.Errorf("read previous profile password: %w", err)
		}
	}

	if err := s.secrets.Put(ctx, secretKey, password); err != nil {
		return fmt.Errorf("store profile password: %w", err)
	}

	profile.PasswordRef = secretKey
	if err := s.profiles.Save(ctx, profile); err != nil {
		var rollbackErr error
		if previousPassword != "" {
			rollbackErr = s.secrets.Put(ctx, secretKey, previousPassword)
		} else {
			rollbackErr = s.secrets.Delete(ctx, secretKey)
		}
		if rollbackErr != nil {
			return fmt.Errorf("save profile and rollback stored password: %w", errors.Join(err, rollbackErr))
		}
		return fmt.Errorf("save profile: %w", err)
	}

	if existing.PasswordRef != "" && existing.PasswordRef != secretKey {
		if err := s.secrets.Delete(ctx, existing.PasswordRef); err != nil {
			return fmt.Errorf("delete previous profile password: %w", err)
		}
	}

	return nil
}

func (s *ProfileService) Remove(ctx context.Context, name domain.ProfileName) error {
	profile, err := s.profiles.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("get profile by name: %w", err)
	}

	if err := s.profiles.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	if profile.PasswordRef == "" {
		return nil
	}

	if err := s.secrets.Delete(ctx, profile.PasswordRef); err != nil {
		if restoreErr := s.profiles.Save(ctx, profile); restoreErr != nil {
			return fmt.Errorf("delete profile password and restore profile: %w", errors.Join(err, restoreErr))
		}
		return fmt.Errorf("delete profile password: %w", err)
	}

	return nil
}

func (s *ProfileService) Get(ctx context.Context, name domain.ProfileName) (domain.Profile, error) {
	profile, err := s.profiles.GetByName(ctx, name)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("get profile by name: %w", err)
	}
	return profile, nil
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Name < profiles[j].Name
	})
	return profiles, nil
}

// Resolve loads a profile and the credentials it refers to.
func (s *ProfileService) Resolve(ctx context.Context, name domain.ProfileName) (domain.Profile, domain.Credentials, error) {
	profile, err := s.Get(ctx, name)
	if err != nil {
		return domain.Profile{}, domain.Credentials{}, err
	}

	creds := domain.Credentials{Username: profile.Username}
	if profile.PasswordRef == "" {
		return profile, creds, nil
	}

	password, err := s.secrets.Get(ctx, profile.PasswordRef)
	if err != nil {
		return domain.Profile{}, domain.Credentials{}, fmt.Errorf("%w: %s: %w", domain.ErrSecretNotFound, profile.PasswordRef, err)
	}
	creds.Password = password

	return profile, creds, nil
}

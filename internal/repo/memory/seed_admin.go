package memory

import (
	"context"
	"errors"

	"github.com/geocoder89/staffportal/internal/config"
	"github.com/geocoder89/staffportal/internal/domain/user"
)

// EnsureAdminUser inserts the seed administrator unless the email is taken.
func EnsureAdminUser(ctx context.Context, repo *UsersRepo, seed config.SeedAdmin) error {
	if seed.Email == "" {
		return nil
	}

	admin := user.User{
		FirstName: seed.FirstName,
		LastName:  seed.LastName,
		Email:     seed.Email,
		Password:  seed.Password,
		Role:      user.RoleAdmin,
		Locked:    false,
		Details: user.Details{
			Designation: "Administrator",
			Phone:       "N/A",
			AltPhone:    "N/A",
			Address:     "N/A",
			Assets: user.Assets{
				AssetType:    "N/A",
				SerialNumber: "N/A",
				CPU:          "N/A",
				RAM:          "N/A",
				NetworkIP:    "N/A",
				Monitors:     "N/A",
			},
		},
	}

	_, err := repo.Create(ctx, admin)
	if errors.Is(err, user.ErrEmailTaken) {
		return nil
	}

	return err
}

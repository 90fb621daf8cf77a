// Package token issues access tokens for operators and integration tests.
package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kolhub/kolhub/internal/domain/staff"
	"github.com/kolhub/kolhub/internal/infrastructure/auth"
	"github.com/kolhub/kolhub/internal/interfaces/cli/common"
)

var (
	env     string
	staffID uint
	brandID uint
	role    string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token",
		Long: `Sign an access token with the configured JWT secret. A platform admin
token has brand 0, e.g.

  kolhub token --staff-id 1 --role platform_admin`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().UintVar(&staffID, "staff-id", 0, "Staff ID carried by the token (required)")
	cmd.Flags().UintVar(&brandID, "brand-id", 0, "Brand ID; 0 for platform admins")
	cmd.Flags().StringVar(&role, "role", string(staff.RoleStaff), "owner, admin, staff or platform_admin")
	_ = cmd.MarkFlagRequired("staff-id")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if err := validate(); err != nil {
		return err
	}

	cfg, _, err := common.Init(common.ResolveEnv(env))
	if err != nil {
		return err
	}

	signed, err := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes).Generate(staffID, brandID, role)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), signed)
	return nil
}

func validate() error {
	if staffID == 0 {
		return fmt.Errorf("--staff-id must be positive")
	}
	switch role {
	case auth.RolePlatformAdmin:
		if brandID != 0 {
			return fmt.Errorf("platform_admin tokens must not carry a brand")
		}
	case string(staff.RoleOwner), string(staff.RoleAdmin), string(staff.RoleStaff):
		if brandID == 0 {
			return fmt.Errorf("--brand-id is required for role %s", role)
		}
	default:
		return fmt.Errorf("unknown role %q", role)
	}
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/offer-dashboard-api/internal/domain"
	"github.com/vfg2006/offer-dashboard-api/internal/usecases/authenticating"
)

var (
	tokenSubject string
	tokenEmail   string
	tokenRole    string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Emite um token de acesso assinado com AUTH_SECRET",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		token, err := authenticating.NewService(cfg.Auth).IssueToken(tokenSubject, tokenEmail, tokenRole, tokenTTL)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var hashKeyCmd = &cobra.Command{
	Use:   "hash-key <chave>",
	Short: "Gera o hash bcrypt para AUTH_SERVICE_KEY_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := authenticating.HashAPIKey(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "sub", "", "Identificador do usuário")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "E-mail do usuário")
	tokenCmd.Flags().StringVar(&tokenRole, "role", domain.RoleAuthenticated, "Role do token (authenticated ou service_role)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Validade do token")
	_ = tokenCmd.MarkFlagRequired("sub")
}

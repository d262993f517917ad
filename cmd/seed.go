package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/digitory/partner_portal_api/cmd/commands"
	"gitlab.com/digitory/partner_portal_api/config"
)

func init() {
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with a demo data set",
	Long:  `Run the pending migrations and fill an empty database with demo accounts, referrals and commissions`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig(viper.GetViper())
		commands.Migrate(cfg)
		commands.Seed(cfg)
	},
}

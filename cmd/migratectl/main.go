// File: cmd/migratectl/main.go
package main

import (
	"fmt"
	"os"

	"library-api/internal/database"

	"github.com/spf13/cobra"
)

// 可替換的函式，測試覆寫用
var (
	runMigrationsFn    = database.RunMigrations
	rollbackAllFn      = database.RollbackAll
	migrationVersionFn = database.MigrationVersion
	exitFunc           = os.Exit
)

func databaseURL() (string, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return "", fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	return dbURL, nil
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "migratectl",
		Short:         "管理資料庫 schema 遷移",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "套用所有未執行的遷移",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbURL, err := databaseURL()
			if err != nil {
				return err
			}
			if err := runMigrationsFn(dbURL); err != nil {
				return err
			}
			cmd.Println("migrations applied")
			return nil
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "回滾所有遷移",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbURL, err := databaseURL()
			if err != nil {
				return err
			}
			if err := rollbackAllFn(dbURL); err != nil {
				return err
			}
			cmd.Println("migrations rolled back")
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "顯示目前的遷移版本",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbURL, err := databaseURL()
			if err != nil {
				return err
			}
			version, dirty, err := migrationVersionFn(dbURL)
			if err != nil {
				return err
			}
			if version == 0 {
				cmd.Println("no migrations applied")
				return nil
			}
			cmd.Printf("version %d (dirty=%t)\n", version, dirty)
			return nil
		},
	}

	rootCmd.AddCommand(upCmd, downCmd, versionCmd)
	return rootCmd
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}

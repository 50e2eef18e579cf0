package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-RoomBooking/internal/config"
)

// newKeysCmd печатает случайные ключи cookie в hex,
// длина строки ключа 64 и 32 байта
func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Сгенерировать значения ROOMBOOK_WEB_HASH_KEY и ROOMBOOK_WEB_BLOCK_KEY",
		RunE: func(cmd *cobra.Command, _ []string) error {
			hash := make([]byte, 32)
			block := make([]byte, 16)
			if _, err := rand.Read(hash); err != nil {
				return err
			}
			if _, err := rand.Read(block); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "export %s_WEB_HASH_KEY=%s\n", config.EnvPrefix, hex.EncodeToString(hash))
			fmt.Fprintf(out, "export %s_WEB_BLOCK_KEY=%s\n", config.EnvPrefix, hex.EncodeToString(block))
			return nil
		},
	}
}

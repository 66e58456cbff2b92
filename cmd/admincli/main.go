package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/gemarathon/backend/boardsrvc"
	"github.com/gemarathon/backend/conf"
	"github.com/gemarathon/backend/histstore"
	"github.com/gemarathon/backend/xlsxstore"
)

func main() {
	_ = godotenv.Load()

	cfg, err := conf.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	aliases, err := conf.ReadAliasTable(cfg.AliasTablePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read class alias table: %v\n", err)
		os.Exit(1)
	}

	store := xlsxstore.NewStore(cfg.WorkbookPath, aliases)

	history, err := histstore.NewStore(cfg.HistoryDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open history store: %v\n", err)
		os.Exit(1)
	}
	defer history.Close()

	srvc := boardsrvc.New(store, history, nil)

	p := tea.NewProgram(initialModel(srvc))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

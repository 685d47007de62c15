// Command client is a small command-line API client for the go-note-keeper
// server. It covers account registration, login, and note CRUD; the bearer
// token printed by register/login is passed to later calls via the -token
// flag or the NOTE_TOKEN environment variable.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: client [flags] <command> [args]

commands:
  register <username> <password>   create an account and print a bearer token
  login    <username> <password>   authenticate and print a bearer token
  list                             list all notes
  get      <id>                    show one note
  create   <title> <content>       create a note
  update   <id> <title> <content>  replace a note's title and content
  delete   <id>                    delete a note
  version                          print the server version

flags:
`

func main() {
	serverURL := flag.String("server", envOr("NOTE_SERVER", "http://localhost:8080"), "base URL of the note server")
	token := flag.String("token", os.Getenv("NOTE_TOKEN"), "bearer token for authenticated commands")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	showBuild := flag.Bool("build-info", false, "print build information and exit")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showBuild {
		printBuildInfo()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	api := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: *serverURL,
		Timeout: *timeout,
	})
	api.SetToken(*token)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, api, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, api adapter.ServerAdapter, command string, args []string) error {
	switch command {
	case "register":
		if len(args) != 2 {
			return fmt.Errorf("register expects <username> <password>")
		}
		resp, err := api.Register(ctx, models.User{Username: args[0], Password: args[1]})
		if err != nil {
			return err
		}
		fmt.Println(resp.AccessToken)
		return nil

	case "login":
		if len(args) != 2 {
			return fmt.Errorf("login expects <username> <password>")
		}
		resp, err := api.Login(ctx, models.User{Username: args[0], Password: args[1]})
		if err != nil {
			return err
		}
		fmt.Println(resp.AccessToken)
		return nil

	case "list":
		notes, err := api.ListNotes(ctx)
		if err != nil {
			return err
		}
		for _, note := range notes {
			printNoteLine(note)
		}
		return nil

	case "get":
		noteID, err := parseNoteID(args, 1)
		if err != nil {
			return err
		}
		note, err := api.GetNote(ctx, noteID)
		if err != nil {
			return err
		}
		printNote(note)
		return nil

	case "create":
		if len(args) != 2 {
			return fmt.Errorf("create expects <title> <content>")
		}
		note, err := api.CreateNote(ctx, models.NoteRequest{Title: args[0], Content: args[1]})
		if err != nil {
			return err
		}
		printNote(note)
		return nil

	case "update":
		noteID, err := parseNoteID(args, 3)
		if err != nil {
			return err
		}
		note, err := api.UpdateNote(ctx, noteID, models.NoteRequest{Title: args[1], Content: args[2]})
		if err != nil {
			return err
		}
		printNote(note)
		return nil

	case "delete":
		noteID, err := parseNoteID(args, 1)
		if err != nil {
			return err
		}
		if err = api.DeleteNote(ctx, noteID); err != nil {
			return err
		}
		fmt.Printf("note %d deleted\n", noteID)
		return nil

	case "version":
		version, err := api.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Println(version)
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func parseNoteID(args []string, expected int) (int64, error) {
	if len(args) != expected {
		return 0, fmt.Errorf("expected %d argument(s) starting with a note id", expected)
	}
	noteID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid note id %q", args[0])
	}
	return noteID, nil
}

func printNoteLine(note models.Note) {
	fmt.Printf("%d\t%s\t(updated %s)\n", note.ID, note.Title, note.UpdatedAt.Format(time.RFC3339))
}

func printNote(note models.Note) {
	fmt.Printf("id:      %d\n", note.ID)
	fmt.Printf("title:   %s\n", note.Title)
	fmt.Printf("created: %s\n", note.CreatedAt.Format(time.RFC3339))
	fmt.Printf("updated: %s\n", note.UpdatedAt.Format(time.RFC3339))
	fmt.Printf("\n%s\n", note.Content)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

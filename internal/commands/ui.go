package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finsight-dev/finsight/internal/app"
	"github.com/finsight-dev/finsight/internal/ui"
)

func newUICommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Jalankan FinSight sebagai sesi interaktif",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}
			return runShell(cmd.Context(), rt, os.Stdin, os.Stdout)
		},
	}
}

// runShell is the interactive session: sign in (or restore the saved
// session), land on the last visited page and switch pages until the user
// quits. Logging out drops back to the sign-in prompt.
func runShell(ctx context.Context, rt *runtime, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		page, ok := rt.app.Bootstrap(ctx)
		if !ok {
			page, ok = signIn(ctx, rt, scanner, out)
			if !ok {
				return nil
			}
		}

		if err := rt.nav.Go(ctx, page); err != nil {
			rt.app.Notify.Error("%s", err)
		}

		if !pageLoop(ctx, rt, scanner, out) {
			return nil
		}
		if err := rt.app.Logout(); err != nil {
			return err
		}
	}
}

// signIn prompts for credentials until a session is established. Returns
// false when the user quits instead.
func signIn(ctx context.Context, rt *runtime, scanner *bufio.Scanner, out io.Writer) (app.Page, bool) {
	for {
		fmt.Fprint(out, "Email (\"daftar\" untuk akun baru, \"selesai\" untuk keluar): ")
		if !scanner.Scan() {
			return "", false
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "selesai":
			return "", false
		case "daftar":
			if register(ctx, rt, scanner, out) {
				return app.PageDashboard, true
			}
			continue
		}

		password, err := ui.PromptPassword(out, "Kata sandi")
		if err != nil {
			rt.app.Notify.Error("%s", err)
			continue
		}
		if err := rt.app.Login(ctx, line, password); err != nil {
			continue
		}
		return app.PageDashboard, true
	}
}

func register(ctx context.Context, rt *runtime, scanner *bufio.Scanner, out io.Writer) bool {
	fmt.Fprint(out, "Nama: ")
	if !scanner.Scan() {
		return false
	}
	name := strings.TrimSpace(scanner.Text())

	fmt.Fprint(out, "Email: ")
	if !scanner.Scan() {
		return false
	}
	email := strings.TrimSpace(scanner.Text())

	password, err := ui.PromptPassword(out, "Kata sandi")
	if err != nil {
		rt.app.Notify.Error("%s", err)
		return false
	}
	return rt.app.Register(ctx, name, email, password) == nil
}

// pageLoop handles page switching. Returns true on "logout" (the caller
// drops back to sign-in) and false on "selesai".
func pageLoop(ctx context.Context, rt *runtime, scanner *bufio.Scanner, out io.Writer) bool {
	for {
		fmt.Fprintf(out, "\n[%s] halaman, \"logout\" atau \"selesai\": ", rt.nav.Current())
		if !scanner.Scan() {
			return false
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "selesai":
			return false
		case "logout":
			return true
		case "?", "help":
			names := make([]string, len(app.Pages))
			for i, p := range app.Pages {
				names[i] = string(p)
			}
			fmt.Fprintf(out, "Halaman: %s\n", strings.Join(names, ", "))
			continue
		}

		page, ok := app.ValidPage(line)
		if !ok {
			rt.app.Notify.Warning("Halaman %q tidak dikenal. Ketik ? untuk daftar halaman.", line)
			continue
		}
		if err := rt.nav.Go(ctx, page); err != nil {
			rt.app.Notify.Error("%s", err)
		}
	}
}

// recipectl is a terminal client for the recipe API. It keeps the session
// token in the user's config directory so later commands stay logged in.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"recipe-api/client"
	"recipe-api/logger"
	"recipe-api/model"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const usage = `recipectl manages your recipes from the terminal.

Usage:
  recipectl [global flags] <command> [flags]

Commands:
  login      log in and remember the token
  logout     forget the token on this machine
  whoami     print the logged-in user
  list       list recipes, optionally filtered by tags (all must match)
  add        create a recipe
  edit       change a recipe
  delete     delete a recipe
  favorite   toggle the favorite flag of a recipe
  tags       show the tag palette

Global flags:
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	global := pflag.NewFlagSet("recipectl", pflag.ContinueOnError)
	global.String("server", "http://localhost:8000", "API base URL")
	global.String("token-file", "", "where to keep the session token (default: user config dir)")
	global.Duration("timeout", 10*time.Second, "request timeout")
	global.String("log-level", "warn", "log level")
	global.SetInterspersed(false)
	global.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		global.PrintDefaults()
	}

	if err := global.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	// RECIPECTL_SERVER etc. override the defaults; flags override both.
	v := viper.New()
	v.SetEnvPrefix("recipectl")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(global); err != nil {
		return err
	}

	logger.Init(logger.WithLevel(v.GetString("log-level")), logger.WithFormat("text"))

	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return errors.New("no command given")
	}

	tokenPath := v.GetString("token-file")
	if tokenPath == "" {
		p, err := client.DefaultTokenPath()
		if err != nil {
			return err
		}
		tokenPath = p
	}
	session, err := client.NewSession(client.FileTokenStore{Path: tokenPath})
	if err != nil {
		return err
	}

	cli := &commandLine{
		client: client.New(v.GetString("server"), session),
		out:    out,
	}
	ctx, cancel := context.WithTimeout(context.Background(), v.GetDuration("timeout"))
	defer cancel()

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "login":
		return cli.login(ctx, cmdArgs)
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami()
	case "list":
		return cli.list(ctx, cmdArgs)
	case "add":
		return cli.add(ctx, cmdArgs)
	case "edit":
		return cli.edit(ctx, cmdArgs)
	case "delete":
		return cli.delete(ctx, cmdArgs)
	case "favorite":
		return cli.favorite(ctx, cmdArgs)
	case "tags":
		return cli.tags()
	default:
		global.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

type commandLine struct {
	client *client.Client
	out    io.Writer
}

func (c *commandLine) login(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("login", pflag.ContinueOnError)
	username := fs.StringP("username", "u", "", "username")
	password := fs.StringP("password", "p", "", "password (or RECIPECTL_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *password == "" {
		*password = os.Getenv("RECIPECTL_PASSWORD")
	}
	if *username == "" || *password == "" {
		return errors.New("login needs --username and --password")
	}

	if err := c.client.Login(ctx, *username, *password); err != nil {
		if msg := c.client.LoginError(); msg != "" {
			return errors.New(msg)
		}
		return err
	}
	fmt.Fprintf(c.out, "Logged in as %s\n", *username)
	return nil
}

func (c *commandLine) logout() error {
	c.client.Logout()
	fmt.Fprintln(c.out, "Logged out")
	return nil
}

func (c *commandLine) whoami() error {
	userID, ok := c.client.Session().UserID()
	if !ok {
		return client.ErrNotLoggedIn
	}
	fmt.Fprintln(c.out, userID)
	return nil
}

func (c *commandLine) list(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
	tags := fs.StringSliceP("tag", "t", nil, "only recipes carrying this tag (repeatable)")
	favorites := fs.BoolP("favorites", "f", false, "only favorites")
	if err := fs.Parse(args); err != nil {
		return err
	}

	book := client.NewRecipeBook(c.client)
	if err := book.Fetch(ctx); err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFAV\tTITLE\tTAGS")
	for _, r := range book.Visible(client.NewTagFilter(*tags...)) {
		if *favorites && !r.IsFavorite {
			continue
		}
		fav := ""
		if r.IsFavorite {
			fav = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, fav, r.Title, strings.Join(r.Tags, ", "))
	}
	return w.Flush()
}

// recipeFlags registers the editable fields on fs.
func recipeFlags(fs *pflag.FlagSet) (title, instructions *string, ingredients, tags *[]string) {
	title = fs.String("title", "", "recipe title")
	instructions = fs.String("instructions", "", "preparation steps")
	ingredients = fs.StringArrayP("ingredient", "i", nil, "one ingredient (repeatable)")
	tags = fs.StringSliceP("tag", "t", nil, "tag (repeatable or comma separated)")
	return
}

func (c *commandLine) add(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("add", pflag.ContinueOnError)
	title, instructions, ingredients, tags := recipeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := model.RecipeRequest{
		Title:        *title,
		Ingredients:  append([]string{}, *ingredients...),
		Instructions: *instructions,
		Tags:         *tags,
	}
	recipe, err := client.NewRecipeBook(c.client).Add(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Created %s\n", recipe.ID)
	return nil
}

// edit sends the full record, so unchanged fields are taken from the
// current server copy.
func (c *commandLine) edit(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("edit", pflag.ContinueOnError)
	title, instructions, ingredients, tags := recipeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := singleID(fs.Args())
	if err != nil {
		return err
	}

	book := client.NewRecipeBook(c.client)
	if err := book.Fetch(ctx); err != nil {
		return err
	}
	var current *model.Recipe
	for _, r := range book.Recipes() {
		if r.ID == id {
			r := r
			current = &r
			break
		}
	}
	if current == nil {
		return client.ErrRecipeGone
	}

	req := model.RecipeRequest{
		Title:        current.Title,
		Ingredients:  current.Ingredients,
		Instructions: current.Instructions,
		Tags:         current.Tags,
	}
	if fs.Changed("title") {
		req.Title = *title
	}
	if fs.Changed("instructions") {
		req.Instructions = *instructions
	}
	if fs.Changed("ingredient") {
		req.Ingredients = *ingredients
	}
	if fs.Changed("tag") {
		req.Tags = *tags
	}

	updated, err := book.Update(ctx, id, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Updated %s\n", updated.ID)
	return nil
}

func (c *commandLine) delete(ctx context.Context, args []string) error {
	id, err := singleID(args)
	if err != nil {
		return err
	}
	if err := client.NewRecipeBook(c.client).Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Deleted %s\n", id)
	return nil
}

func (c *commandLine) favorite(ctx context.Context, args []string) error {
	id, err := singleID(args)
	if err != nil {
		return err
	}
	recipe, err := client.NewRecipeBook(c.client).ToggleFavorite(ctx, id)
	if err != nil {
		return err
	}
	state := "no longer a favorite"
	if recipe.IsFavorite {
		state = "now a favorite"
	}
	fmt.Fprintf(c.out, "%s is %s\n", recipe.Title, state)
	return nil
}

func (c *commandLine) tags() error {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TAG\tCLASS")
	for _, t := range client.AvailableTags {
		fmt.Fprintf(w, "%s\t%s\n", t.Name, t.ColorClass)
	}
	return w.Flush()
}

func singleID(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("expected exactly one recipe id")
	}
	return args[0], nil
}

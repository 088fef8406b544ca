package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rohmanhakim/park-finder/internal/places"
	"github.com/rohmanhakim/park-finder/internal/site"
)

const (
	statePrompt  = `Enter a state name (e.g. Michigan, michigan) or "exit": `
	detailPrompt = `Choose the number for detail search or "exit" or "back": `

	msgBadState     = "[Error] Enter proper state name"
	msgInvalidInput = "[Error] Invalid input"
)

// SiteBrowser lists states and the sites within them.
type SiteBrowser interface {
	BuildStateIndex(ctx context.Context) (map[string]string, error)
	SitesForState(ctx context.Context, stateUrl string) ([]site.Site, error)
}

// NearbyFinder finds points of interest around a site.
type NearbyFinder interface {
	Nearby(ctx context.Context, s site.Site) (places.SearchResponse, error)
}

/*
Controller

Drives the two-level prompt loop:
  - state prompt: a state name lists its sites, "exit" quits
  - site prompt: a number shows places near that site, "back" returns to
    the state prompt, "exit" quits

Input is matched case-insensitively. End of input ends the session like
"exit". A failed lookup prints an error and returns to the state prompt.
*/
type Controller struct {
	browser SiteBrowser
	finder  NearbyFinder
	in      *bufio.Scanner
	out     io.Writer
}

func NewController(browser SiteBrowser, finder NearbyFinder, in io.Reader, out io.Writer) *Controller {
	return &Controller{
		browser: browser,
		finder:  finder,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run serves prompts until the user exits or input ends. It returns an
// error only when the session cannot continue: the state index could not
// be built, input failed, or ctx was cancelled.
//
// The state index is built on the first answer other than "exit", so the
// user can always leave without touching the network.
func (c *Controller) Run(ctx context.Context) error {
	var index map[string]string

	for {
		answer, ok := c.prompt(statePrompt)
		if !ok {
			return c.in.Err()
		}
		state := strings.ToLower(answer)
		if state == "exit" {
			return nil
		}

		if index == nil {
			built, err := c.browser.BuildStateIndex(ctx)
			if err != nil {
				return err
			}
			index = built
		}

		stateUrl, found := index[state]
		if !found {
			fmt.Fprintln(c.out, msgBadState)
			fmt.Fprintln(c.out)
			continue
		}

		sites, err := c.browser.SitesForState(ctx, stateUrl)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.printError(err)
			continue
		}
		RenderSites(c.out, state, sites)

		exit, err := c.siteLoop(ctx, sites)
		if exit {
			return err
		}
	}
}

// siteLoop handles the site prompt. It reports whether the whole session
// should end.
func (c *Controller) siteLoop(ctx context.Context, sites []site.Site) (bool, error) {
	for {
		answer, ok := c.prompt(detailPrompt)
		if !ok {
			return true, c.in.Err()
		}

		switch strings.ToLower(answer) {
		case "exit":
			return true, nil
		case "back":
			return false, nil
		}

		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(sites) {
			fmt.Fprintln(c.out, msgInvalidInput)
			fmt.Fprintln(c.out)
			continue
		}

		chosen := sites[n-1]
		resp, err := c.finder.Nearby(ctx, chosen)
		if err != nil {
			if ctx.Err() != nil {
				return true, ctx.Err()
			}
			c.printError(err)
			return false, nil
		}
		RenderPlaces(c.out, chosen.Name(), resp.Places())
	}
}

// prompt writes text and reads one trimmed line. It returns false at end
// of input.
func (c *Controller) prompt(text string) (string, bool) {
	fmt.Fprint(c.out, text)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Controller) printError(err error) {
	fmt.Fprintf(c.out, "[Error] %v\n\n", err)
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/cakeshop/internal/models"
)

func writeListings(w io.Writer, listings []models.RatedListing) {
	for i, l := range listings {
		var tags []string
		if l.Image != "" {
			tags = append(tags, "[image]")
		}
		if l.Video != "" {
			tags = append(tags, "[video]")
		}
		fmt.Fprintf(w, "%d. %s  %s  %s", i+1, l.Name, l.Price, models.Stars(l.Rating))
		if len(tags) > 0 {
			fmt.Fprint(w, "  ", strings.Join(tags, " "))
		}
		fmt.Fprintln(w)
		if l.Description != "" {
			fmt.Fprintf(w, "   %s\n", l.Description)
		}
	}
}

func writeProfile(w io.Writer, p models.Profile) {
	logo := "none"
	if p.Logo != "" {
		logo = "set"
	}
	fmt.Fprintf(w, "Business name: %s\nLocation: %s\nOwner name: %s\nDescription: %s\nLogo: %s\n",
		p.BusinessName, p.Location, p.OwnerName, p.Description, logo)
}

/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ssargent/seedforge/pkg/codec"
	"github.com/ssargent/seedforge/pkg/wire"
)

// outputSeedTable displays one row per experiment
func outputSeedTable(out io.Writer, s *wire.Seed) error {
	fmt.Fprintf(out, "Serial:  %s\n", s.SerialNumber)
	fmt.Fprintf(out, "Version: %d\n", s.Version)
	fmt.Fprintf(out, "Studies: %d\n\n", len(s.Studies))

	if len(s.Studies) == 0 {
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STUDY\tEXPERIMENT\tWEIGHT\tCHANNELS\tPLATFORMS")

	for _, st := range s.Studies {
		channels := formatEnums(wire.ChannelName, st.Filter.Channels)
		platforms := formatEnums(wire.PlatformName, st.Filter.Platforms)
		for _, e := range st.Experiments {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", st.Name, e.Name, e.ProbabilityWeight, channels, platforms)
		}
	}
	return w.Flush()
}

// outputHistoryTable displays archived seeds
func outputHistoryTable(out io.Writer, entries []*codec.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No archived seeds found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERIAL\tPUBLISHED\tBYTES\tSTUDIES")

	for _, e := range entries {
		studies := "?"
		if s, err := wire.Decode(e.Payload); err == nil {
			studies = fmt.Sprint(len(s.Studies))
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", e.Serial, e.PublishedAt.Format(time.RFC3339), len(e.Payload), studies)
	}
	return w.Flush()
}

func formatEnums(name func(int32) string, codes []int32) string {
	if len(codes) == 0 {
		return "-"
	}
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = name(c)
	}
	return strings.Join(names, ",")
}

package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/tessile/fliptri/triangulation"
)

// parseArg reads one triangulation from a command-line argument: either a
// balanced-parentheses encoding or the shorthand "fan:N[:APEX]".
func parseArg(arg string) (*triangulation.Graph, error) {
	if tail, ok := strings.CutPrefix(arg, "fan:"); ok {
		return parseFan(arg, tail)
	}
	g, err := triangulation.Parse(arg)
	if err != nil {
		return nil, errors.Wrapf(err, "triangulation encoding %q", arg)
	}

	return g, nil
}

// parseFan reads the "N" or "N:APEX" tail of a fan shorthand.
func parseFan(arg, tail string) (*triangulation.Graph, error) {
	sizePart, apexPart, hasApex := strings.Cut(tail, ":")
	n, err := strconv.Atoi(sizePart)
	if err != nil {
		return nil, errors.Wrapf(err, "fan size in %q", arg)
	}
	apex := 0
	if hasApex {
		if apex, err = strconv.Atoi(apexPart); err != nil {
			return nil, errors.Wrapf(err, "fan apex in %q", arg)
		}
	}
	g, err := triangulation.Fan(n, apex)
	if err != nil {
		return nil, errors.Wrapf(err, "fan shorthand %q", arg)
	}

	return g, nil
}

// parsePair reads the <start> <target> argument pair.
func parsePair(startArg, targetArg string) (start, target *triangulation.Graph, err error) {
	if start, err = parseArg(startArg); err != nil {
		return nil, nil, err
	}
	if target, err = parseArg(targetArg); err != nil {
		return nil, nil, err
	}

	return start, target, nil
}

// SPDX-License-Identifier: MIT
// Package: ringmaze/dfs
//
// utils.go — string-slice helpers and cycle canonicalisation.

package dfs

import "strings"

// IndexOf returns the first index of val in s, or -1.
// Complexity: O(n).
func IndexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}
	return -1
}

// JoinSig joins c with commas into a single signature.
func JoinSig(c []string) string {
	return strings.Join(c, ",")
}

// canonical rotates the open cycle seq to start at its smallest ID, walks it
// towards the smaller neighbour of that ID, and closes it by repeating the
// start. It returns the signature and the closed cycle.
// Complexity: O(L).
func canonical(seq []string) (string, []string) {
	n := len(seq)
	lo := 0
	for i := 1; i < n; i++ {
		if seq[i] < seq[lo] {
			lo = i
		}
	}

	step := 1
	if n > 2 && seq[(lo+n-1)%n] < seq[(lo+1)%n] {
		step = n - 1
	}
	out := make([]string, 0, n+1)
	for i, k := 0, lo; i < n; i, k = i+1, (k+step)%n {
		out = append(out, seq[k])
	}
	out = append(out, out[0])

	return JoinSig(out), out
}

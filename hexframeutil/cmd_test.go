/*
Copyright © 2026 the Hexframe authors.
This file is part of Hexframe.

Hexframe is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Hexframe is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Hexframe.  If not, see <http://www.gnu.org/licenses/>.
*/

package hexframeutil

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/spatialmodel/hexframe"
)

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	Root.SetOutput(&buf)
	Root.SetArgs([]string{"version"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	want := fmt.Sprintf("Hexframe v%s\n", hexframe.Version)
	if buf.String() != want {
		t.Errorf("want %q but have %q", want, buf.String())
	}
}

func TestIndexCmd(t *testing.T) {
	f, err := os.Create("tmp_points.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove("tmp_points.csv")
	fmt.Fprint(f, "lat,lng,val\n50,14,2\n51,15,5\n")
	f.Close()
	defer os.Remove("tmp_indexed.csv")

	Root.SetArgs([]string{"index",
		"--InputFile", "tmp_points.csv",
		"--OutputFile", "tmp_indexed.csv",
		"--Resolution", "9"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile("tmp_indexed.csv")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines but have %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "h3_09,") {
		t.Errorf("want an h3_09 index column but have header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "891e3097383ffff,") ||
		!strings.HasPrefix(lines[2], "891e2659c2fffff,") {
		t.Errorf("unexpected cell assignments in %q", string(b))
	}
}

func TestSmoothCmdConfig(t *testing.T) {
	f, err := os.Create("tmp_cells.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove("tmp_cells.csv")
	fmt.Fprint(f, "h3_09,val\n891f1d48177ffff,1\n")
	f.Close()
	defer os.Remove("tmp_smooth.csv")

	Root.SetArgs([]string{"smooth",
		"--InputFile", "tmp_cells.csv",
		"--OutputFile", "tmp_smooth.csv",
		"--Weights", "[2, 1]"})
	if err := Root.Execute(); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile("tmp_smooth.csv")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 8 { // header + origin + 6 neighbors
		t.Fatalf("want 8 lines but have %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "h3_k_ring,") {
		t.Errorf("want an h3_k_ring index column but have header %q", lines[0])
	}
}

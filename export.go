// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.15
//

package redshift

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Plain data export of the series (one row per sample)
type CSVRenderer struct {
	NoHeader bool
}

func (r *CSVRenderer) Render(w io.Writer, series []*Series) error {
	cw := csv.NewWriter(w)
	if !r.NoHeader {
		if err := cw.Write([]string{"name", "theta", "radius", "shift"}); err != nil {
			return err
		}
	}
	for _, s := range series {
		for i := 0; i < s.Len(); i++ {
			rec := []string{
				s.Orbit.Name,
				strconv.FormatFloat(s.Theta[i], 'f', 9, 64),
				strconv.FormatFloat(s.Radius[i], 'f', 4, 64),
				strconv.FormatFloat(s.Shift[i], 'e', 12, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

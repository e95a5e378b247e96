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
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/ctessum/requestcache"
	goshp "github.com/jonas-p/go-shp"
	"github.com/tealeg/xlsx"

	"github.com/spatialmodel/hexframe"
	"github.com/spatialmodel/hexframe/frame"
)

// A Schema declares the types of dataset columns, overriding type
// inference. Recognized types are "string", "int", and "float".
type Schema struct {
	Columns map[string]string
}

// LoadSchema reads a column type schema from a TOML file. An empty path
// returns a nil schema, meaning types are inferred.
func LoadSchema(path string) (*Schema, error) {
	if path == "" {
		return nil, nil
	}
	s := new(Schema)
	if _, err := toml.DecodeFile(path, s); err != nil {
		return nil, fmt.Errorf("hexframe: reading schema file: %v", err)
	}
	for col, typ := range s.Columns {
		switch typ {
		case "string", "int", "float":
		default:
			return nil, fmt.Errorf("hexframe: schema column %s has invalid type %s", col, typ)
		}
	}
	return s, nil
}

// parseValue converts a dataset attribute to the type the schema declares
// for its column, or to the narrowest of int, float64, and string that can
// represent it when the schema is silent.
func (s *Schema) parseValue(column, v string) (interface{}, error) {
	v = strings.TrimSpace(v)
	if s != nil {
		switch s.Columns[column] {
		case "string":
			return v, nil
		case "int":
			i, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("hexframe: column %s: %v", column, err)
			}
			return i, nil
		case "float":
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("hexframe: column %s: %v", column, err)
			}
			return f, nil
		}
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f, nil
	}
	return v, nil
}

// ReadFrame reads a dataset into a Frame, choosing the format from the
// file extension.
func ReadFrame(path string, schema *Schema) (*frame.Frame, error) {
	switch ext := filepath.Ext(path); ext {
	case ".csv":
		return readCSV(path, schema)
	case ".shp":
		return readShp(path, schema)
	case ".xlsx":
		return readXLSX(path, schema)
	default:
		return nil, fmt.Errorf("hexframe: unsupported input format %s", ext)
	}
}

func readCSV(path string, schema *Schema) (*frame.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("hexframe: reading csv header: %v", err)
	}
	values := make([][]interface{}, len(header))
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("hexframe: reading csv: %v", err)
		}
		for i, v := range rec {
			pv, err := schema.parseValue(header[i], v)
			if err != nil {
				return nil, err
			}
			values[i] = append(values[i], pv)
		}
	}
	columns := make([]frame.Column, len(header))
	for i, name := range header {
		columns[i] = frame.Column{Name: name, Values: values[i]}
	}
	return frame.New(columns...)
}

func readShp(path string, schema *Schema) (*frame.Frame, error) {
	d, err := shp.NewDecoder(path)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	var names []string
	for _, f := range d.Fields() {
		names = append(names, f.String())
	}
	geoms := []interface{}{}
	values := make([][]interface{}, len(names))
	for {
		g, fields, more := d.DecodeRowFields(names...)
		if !more {
			break
		}
		geoms = append(geoms, g)
		for i, name := range names {
			pv, err := schema.parseValue(name, fields[name])
			if err != nil {
				return nil, err
			}
			values[i] = append(values[i], pv)
		}
	}
	if err := d.Error(); err != nil {
		return nil, fmt.Errorf("hexframe: reading shapefile: %v", err)
	}
	columns := make([]frame.Column, 0, len(names)+1)
	for i, name := range names {
		columns = append(columns, frame.Column{Name: name, Values: values[i]})
	}
	columns = append(columns, frame.Column{Name: hexframe.GeometryColumn, Values: geoms})
	return frame.New(columns...)
}

// xlsxCache holds previously opened Microsoft Excel files
// to avoid reading the same file multiple times.
var xlsxCache *requestcache.Cache

var loadXLSXCacheOnce sync.Once

// loadXLSXFile loads a Microsoft Excel file from disk, utilizing a cache
// to avoid loading the same file more than once.
func loadXLSXFile(fileName string) (*xlsx.File, error) {
	loadXLSXCacheOnce.Do(func() {
		xlsxCache = requestcache.NewCache(func(ctx context.Context, req interface{}) (interface{}, error) {
			filename := req.(string)
			f, err := xlsx.OpenFile(filename)
			if err != nil {
				return nil, fmt.Errorf("hexframe: opening xlsx file: %v", err)
			}
			return f, nil
		}, runtime.GOMAXPROCS(-1), requestcache.Memory(100))
	})
	r := xlsxCache.NewRequest(context.Background(), fileName, fileName)
	fI, err := r.Result()
	if err != nil {
		return nil, err
	}
	return fI.(*xlsx.File), nil
}

// readXLSX reads the first sheet of an Excel workbook. The first row
// holds the column names.
func readXLSX(path string, schema *Schema) (*frame.Frame, error) {
	f, err := loadXLSXFile(path)
	if err != nil {
		return nil, err
	}
	if len(f.Sheets) == 0 {
		return nil, fmt.Errorf("hexframe: xlsx file %s has no sheets", path)
	}
	s := f.Sheets[0]
	if len(s.Rows) == 0 {
		return nil, fmt.Errorf("hexframe: xlsx sheet %s is empty", s.Name)
	}
	var header []string
	for _, c := range s.Rows[0].Cells {
		header = append(header, strings.TrimSpace(c.Value))
	}
	values := make([][]interface{}, len(header))
	for _, row := range s.Rows[1:] {
		for i := range header {
			var v string
			if i < len(row.Cells) {
				v = row.Cells[i].Value
			}
			pv, err := schema.parseValue(header[i], v)
			if err != nil {
				return nil, err
			}
			values[i] = append(values[i], pv)
		}
	}
	columns := make([]frame.Column, len(header))
	for i, name := range header {
		columns[i] = frame.Column{Name: name, Values: values[i]}
	}
	return frame.New(columns...)
}

// WriteFrame writes a Frame to a dataset file, choosing the format from
// the file extension.
func WriteFrame(f *frame.Frame, path string) error {
	switch ext := filepath.Ext(path); ext {
	case ".csv":
		return writeCSV(f, path)
	case ".shp":
		return writeShp(f, path)
	case ".geojson":
		return writeGeoJSON(f, path)
	default:
		return fmt.Errorf("hexframe: unsupported output format %s", ext)
	}
}

// formatValue renders a single table value for text output. Cell lists
// are rendered as JSON arrays.
func formatValue(v interface{}) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case []string:
		b, err := json.Marshal(v)
		return string(b), err
	case geom.Geom:
		b, err := geojson.Encode(v)
		return string(b), err
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func writeCSV(f *frame.Frame, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	w := csv.NewWriter(out)

	indexName := f.IndexName()
	if indexName == "" {
		indexName = "index"
	}
	header := append([]string{indexName}, f.Columns()...)
	if err := w.Write(header); err != nil {
		return err
	}
	index := f.Index()
	cols := make([][]interface{}, len(f.Columns()))
	for i, name := range f.Columns() {
		if cols[i], err = f.Column(name); err != nil {
			return err
		}
	}
	for row := 0; row < f.Len(); row++ {
		rec := make([]string, len(header))
		if rec[0], err = formatValue(index[row]); err != nil {
			return err
		}
		for i := range cols {
			if rec[i+1], err = formatValue(cols[i][row]); err != nil {
				return err
			}
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// writeShp writes a Frame with polygonal geometry to a shapefile.
// Numeric columns become float fields and all others become string
// fields; the index is written as a string field named after the index.
func writeShp(f *frame.Frame, path string) error {
	gcol, err := f.Column(hexframe.GeometryColumn)
	if err != nil {
		return fmt.Errorf("hexframe: writing shapefile: %v", err)
	}
	indexName := f.IndexName()
	if indexName == "" {
		indexName = "index"
	}
	var names []string
	for _, name := range f.Columns() {
		if name != hexframe.GeometryColumn {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	fields := make([]goshp.Field, 0, len(names)+1)
	fields = append(fields, goshp.StringField(indexName, 25))
	for _, name := range names {
		if f.IsNumeric(name) {
			fields = append(fields, goshp.FloatField(name, 14, 8))
		} else {
			fields = append(fields, goshp.StringField(name, 50))
		}
	}
	e, err := shp.NewEncoderFromFields(path, goshp.POLYGON, fields...)
	if err != nil {
		return fmt.Errorf("hexframe: creating output shapefile: %v", err)
	}
	index := f.Index()
	cols := make([][]interface{}, len(names))
	for i, name := range names {
		if cols[i], err = f.Column(name); err != nil {
			return err
		}
	}
	for row := 0; row < f.Len(); row++ {
		g, ok := gcol[row].(geom.Geom)
		if !ok {
			return fmt.Errorf("hexframe: writing shapefile: row %d has no geometry", row)
		}
		vals := make([]interface{}, 0, len(names)+1)
		key, err := formatValue(index[row])
		if err != nil {
			return err
		}
		vals = append(vals, key)
		for i, name := range names {
			if f.IsNumeric(name) {
				vals = append(vals, cols[i][row])
			} else {
				v, err := formatValue(cols[i][row])
				if err != nil {
					return err
				}
				vals = append(vals, v)
			}
		}
		if err := e.EncodeFields(g, vals...); err != nil {
			return fmt.Errorf("hexframe: writing output shapefile: %v", err)
		}
	}
	e.Close()
	return nil
}

// geojsonFeature is one entry of a GeoJSON FeatureCollection.
type geojsonFeature struct {
	Type       string                 `json:"type"`
	Geometry   *geojson.Geometry      `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

type geojsonFeatureCollection struct {
	Type     string           `json:"type"`
	Features []geojsonFeature `json:"features"`
}

func writeGeoJSON(f *frame.Frame, path string) error {
	gcol, err := f.Column(hexframe.GeometryColumn)
	if err != nil {
		return fmt.Errorf("hexframe: writing geojson: %v", err)
	}
	indexName := f.IndexName()
	if indexName == "" {
		indexName = "index"
	}
	fc := geojsonFeatureCollection{Type: "FeatureCollection"}
	index := f.Index()
	for row := 0; row < f.Len(); row++ {
		g, ok := gcol[row].(geom.Geom)
		if !ok {
			return fmt.Errorf("hexframe: writing geojson: row %d has no geometry", row)
		}
		gj, err := geojson.ToGeoJSON(g)
		if err != nil {
			return fmt.Errorf("hexframe: writing geojson: %v", err)
		}
		props := map[string]interface{}{indexName: index[row]}
		for _, name := range f.Columns() {
			if name == hexframe.GeometryColumn {
				continue
			}
			col, err := f.Column(name)
			if err != nil {
				return err
			}
			props[name] = col[row]
		}
		fc.Features = append(fc.Features, geojsonFeature{
			Type:       "Feature",
			Geometry:   gj,
			Properties: props,
		})
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	e := json.NewEncoder(out)
	return e.Encode(fc)
}

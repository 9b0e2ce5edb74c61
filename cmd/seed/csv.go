package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// FilaTipo una línea válida del CSV.
type FilaTipo struct {
	Linea     int
	Nombre    string
	Categoria string
	Tarifa    decimal.Decimal
}

// LeerTipos interpreta el CSV. Excel en Windows lo guarda en Windows-1252; si el contenido no es
// UTF-8 válido se decodifica con ese charset. La primera fila es cabecera si la tarifa no es numérica.
func LeerTipos(r io.Reader) ([]FilaTipo, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
	}

	br := bufio.NewReader(src)
	sep, err := detectarSeparador(br)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(br)
	cr.Comma = sep
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var filas []FilaTipo
	for linea := 1; ; linea++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", linea, err)
		}
		if len(rec) < 3 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		// Acepta coma decimal ("2,50") además de punto.
		tarifa, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(rec[2]), ",", "."))
		if err != nil {
			if linea == 1 {
				continue
			}
			return nil, fmt.Errorf("línea %d: tarifa inválida %q", linea, rec[2])
		}
		if tarifa.IsNegative() {
			return nil, fmt.Errorf("línea %d: tarifa negativa", linea)
		}
		filas = append(filas, FilaTipo{
			Linea:     linea,
			Nombre:    strings.TrimSpace(rec[0]),
			Categoria: strings.TrimSpace(rec[1]),
			Tarifa:    tarifa,
		})
	}
	return filas, nil
}

// detectarSeparador ";" si la primera línea lo contiene, si no ",".
func detectarSeparador(br *bufio.Reader) (rune, error) {
	first, err := br.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return 0, err
	}
	if i := bytes.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}
	if bytes.IndexByte(first, ';') >= 0 {
		return ';', nil
	}
	return ',', nil
}

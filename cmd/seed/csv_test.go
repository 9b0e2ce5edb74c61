package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeerTipos_PuntoYComaConCabecera(t *testing.T) {
	in := "nombre;categoria;tarifa\nCorte recto;Corte;2,50\n;;\nPulido;Acabado;1.75\n"
	filas, err := LeerTipos(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, filas, 2)
	assert.Equal(t, "Corte recto", filas[0].Nombre)
	assert.Equal(t, "Corte", filas[0].Categoria)
	assert.Equal(t, "2.50", filas[0].Tarifa.StringFixed(2))
	assert.Equal(t, 4, filas[1].Linea)
}

func TestLeerTipos_Windows1252(t *testing.T) {
	// "Biselado ñ" con ñ = 0xF1 en Windows-1252.
	in := "Biselado \xf1,Acabado,3\n"
	filas, err := LeerTipos(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, "Biselado ñ", filas[0].Nombre)
}

func TestLeerTipos_TarifaInvalida(t *testing.T) {
	_, err := LeerTipos(strings.NewReader("Corte,Corte,1\nPulido,Acabado,abc\n"))
	assert.ErrorContains(t, err, "línea 2")
}

func TestLeerTipos_Vacio(t *testing.T) {
	filas, err := LeerTipos(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, filas)
}

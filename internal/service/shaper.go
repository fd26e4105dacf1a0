// internal/service/shaper.go
package service

import (
	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/models"
)

const (
	// marcador padrão para qualquer campo ligado ausente
	Desconhecido = "Desconhecido"
	// data de descoberta ausente
	SemData = "N/A"
	// maior peso já registrado, usado pelo gráfico comparativo do front
	PesoRecordeKg = 80000
)

// Shape achata o documento hidratado no registro que o front espera.
// Campos de join ausentes viram "Desconhecido", peso vira float64
// (0 se ausente), datas viram YYYY-MM-DD ou "N/A". A ordem dos
// fósseis é a que veio do banco.
func Shape(d *models.DinosaurHydrated) *models.DinosaurProfile {
	p := &models.DinosaurProfile{
		ID:                d.ID.Hex(),
		NomePopular:       d.NomePopular,
		NomeCientifico:    d.NomeCientifico,
		SignificadoNome:   d.SignificadoNome,
		AlturaMediaM:      d.AlturaMediaM,
		ComprimentoMedioM: d.ComprimentoMedioM,
		PesoMedioKg:       asFloat64(d.PesoMedioKg),
		PesoRecordeKg:     PesoRecordeKg,
		Imagem:            d.Imagem,

		NomeDieta:   Desconhecido,
		NomePeriodo: Desconhecido,
		Clima:       Desconhecido,

		Fossil: []models.FossilView{},
	}

	if d.DietaInfo != nil && d.DietaInfo.NomeDieta != "" {
		p.NomeDieta = d.DietaInfo.NomeDieta
	}
	if per := d.PeriodoInfo; per != nil {
		if per.NomePeriodo != "" {
			p.NomePeriodo = per.NomePeriodo
		}
		if per.Clima != "" {
			p.Clima = per.Clima
		}
		p.MaInicio = per.MaInicio
		p.MaFim = per.MaFim
	}

	for _, f := range d.ListaFosseis {
		p.Fossil = append(p.Fossil, shapeFossil(f))
	}
	return p
}

func shapeFossil(f models.FossilHydrated) models.FossilView {
	v := models.FossilView{
		Codigo:          f.Codigo,
		DataDescoberta:  SemData,
		NomeDescobridor: Desconhecido,
		LocalDescoberta: models.LocalView{
			Cidade: Desconhecido,
			Estado: Desconhecido,
			Pais:   Desconhecido,
		},
		Museu: models.MuseuView{
			Nome:   Desconhecido,
			Cidade: Desconhecido,
			Pais:   Desconhecido,
		},
		Ossos: []string{},
	}

	if f.DataDescoberta != nil {
		v.DataDescoberta = f.DataDescoberta.Format("2006-01-02")
	}
	if f.Desc != nil && f.Desc.NomeDescobridor != "" {
		v.NomeDescobridor = f.Desc.NomeDescobridor
	}
	if loc := f.Loc; loc != nil {
		v.LocalDescoberta.Cidade = textoOuDesconhecido(loc.Cidade)
		v.LocalDescoberta.Estado = textoOuDesconhecido(loc.Estado)
		v.LocalDescoberta.Pais = textoOuDesconhecido(loc.Pais)
	}
	if mus := f.Mus; mus != nil {
		v.Museu.Nome = textoOuDesconhecido(mus.NomeMuseu)
		v.Museu.Cidade = textoOuDesconhecido(mus.CidadeMuseu)
		v.Museu.Pais = textoOuDesconhecido(mus.PaisMuseu)
	}

	// dos ossos só interessa o nome da parte
	for _, o := range f.ListaOssosRaw {
		v.Ossos = append(v.Ossos, o.NomeParte)
	}
	return v
}

func textoOuDesconhecido(s string) string {
	if s == "" {
		return Desconhecido
	}
	return s
}

// asFloat64: peso chega do banco como int32, int64 ou double
// dependendo de como o documento foi inserido.
func asFloat64(v any) float64 {
	switch x := v.(type) {
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}

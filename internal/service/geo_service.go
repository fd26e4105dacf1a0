// internal/service/geo_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/cache"
	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/geo"
	"github.com/rafaelmsantos28/DB-II-Dinossauros/internal/models"
)

// Geocoder é o que o serviço precisa do client Nominatim.
type Geocoder interface {
	Geocode(ctx context.Context, endereco string) (*geo.Point, error)
}

// GeoService resolve os locais de descoberta dos fósseis em pontos de
// mapa. Tudo melhor esforço: lookup que falha ou estoura o tempo só
// derruba aquele ponto, nunca a resposta inteira.
type GeoService struct {
	geocoder Geocoder
	cache    *cache.Cache
	ttl      time.Duration
}

func NewGeoService(g Geocoder, c *cache.Cache, ttl time.Duration) *GeoService {
	return &GeoService{geocoder: g, cache: c, ttl: ttl}
}

func geoKey(cidade, pais string) string {
	return fmt.Sprintf("geo:%s|%s", cidade, pais)
}

// TemLocal: só vale geocodificar com cidade e país de verdade
// (campo defaultado conta como sem local).
func TemLocal(f models.FossilView) bool {
	l := f.LocalDescoberta
	return l.Cidade != "" && l.Cidade != Desconhecido &&
		l.Pais != "" && l.Pais != Desconhecido
}

// LocatePoint resolve um fóssil: cache Redis primeiro, Nominatim no
// miss. (nil, nil) quando o endereço não foi encontrado.
func (s *GeoService) LocatePoint(ctx context.Context, f models.FossilView) (*models.MapPoint, error) {
	cidade := f.LocalDescoberta.Cidade
	pais := f.LocalDescoberta.Pais
	key := geoKey(cidade, pais)

	var pt geo.Point
	if ok, err := s.cache.GetJSON(ctx, key, &pt); err == nil && ok {
		return mapPoint(f, pt), nil
	}

	p, err := s.geocoder.Geocode(ctx, fmt.Sprintf("%s, %s", cidade, pais))
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	if err := s.cache.SetJSON(ctx, key, p, s.ttl); err != nil {
		log.Printf("[geo] erro cacheando %s: %v", key, err)
	}
	return mapPoint(f, *p), nil
}

// MapForFossils geocodifica todos os locais em paralelo (um goroutine
// por fóssil, orçamento total de 10s) e separa, no resultado, fóssil
// sem local cadastrado de lookup que falhou.
func (s *GeoService) MapForFossils(ctx context.Context, fosseis []models.FossilView) *models.MapResult {
	res := &models.MapResult{Pontos: []models.MapPoint{}}

	type slot struct {
		ponto *models.MapPoint
		falha bool
	}
	slots := make([]slot, len(fosseis))

	ctxTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for i, f := range fosseis {
		if !TemLocal(f) {
			res.SemLocal++
			continue
		}

		wg.Add(1)
		go func(i int, f models.FossilView) {
			defer wg.Done()
			p, err := s.LocatePoint(ctxTimeout, f)
			if err != nil {
				log.Printf("[geo] erro geocodificando %q (%s, %s): %v",
					f.Codigo, f.LocalDescoberta.Cidade, f.LocalDescoberta.Pais, err)
				slots[i].falha = true
				return
			}
			if p == nil {
				// endereço não encontrado também conta como falha
				slots[i].falha = true
				return
			}
			slots[i].ponto = p
		}(i, f)
	}
	wg.Wait()

	// mantém a ordem dos fósseis na lista de pontos
	for _, sl := range slots {
		if sl.falha {
			res.Falhas++
		}
		if sl.ponto != nil {
			res.Pontos = append(res.Pontos, *sl.ponto)
		}
	}
	return res
}

func mapPoint(f models.FossilView, pt geo.Point) *models.MapPoint {
	return &models.MapPoint{
		Codigo: f.Codigo,
		Cidade: f.LocalDescoberta.Cidade,
		Pais:   f.LocalDescoberta.Pais,
		Lat:    pt.Lat,
		Lon:    pt.Lon,
	}
}

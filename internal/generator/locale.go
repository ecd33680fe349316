package generator

import (
	"errors"
	"fmt"
	"time"

	"bookgen/internal/book"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
)

// DefaultRegion is used when a requested region is not registered.
const DefaultRegion = book.DefaultRegion

// ErrUnknownLocale is returned when a text source is requested for an empty locale chain.
var ErrUnknownLocale = errors.New("no locale available")

// Lexicon is the locale-specific vocabulary used for text synthesis. An empty
// field means the locale cannot produce it and the next locale in the chain is used.
type Lexicon struct {
	FirstNames      []string
	LastNames       []string
	Adjectives      []string
	Materials       []string
	Products        []string
	CompanySuffixes []string
	LoremWords      []string
	FamilyNameFirst bool
	// Unspaced locales join words without spaces.
	Unspaced bool
}

// Locale is one text-synthesis locale.
type Locale struct {
	Code       string
	Translator locales.Translator
	Lexicon    Lexicon
}

// Chain is an ordered list of locales tried when synthesizing a field, primary first.
type Chain []Locale

// Primary returns the first locale of the chain.
func (c Chain) Primary() Locale {
	if len(c) == 0 {
		return Locale{}
	}
	return c[0]
}

func (c Chain) words(field func(Lexicon) []string) []string {
	for _, l := range c {
		if w := field(l.Lexicon); len(w) > 0 {
			return w
		}
	}
	return nil
}

// FormatDate formats t with the short date format of the first locale that has a translator.
func (c Chain) FormatDate(t time.Time) string {
	for _, l := range c {
		if l.Translator != nil {
			return l.Translator.FmtDateShort(t)
		}
	}
	return t.Format(time.DateOnly)
}

// Region maps a UI region name to a locale.
type Region struct {
	Name   string
	Locale Locale
}

// Registry is an immutable mapping of region names to locale chains.
type Registry struct {
	regions  []Region
	byName   map[string]int
	def      int
	fallback Locale
}

// NewRegistry builds a registry. defaultRegion must be one of regions; fallback
// terminates every chain.
func NewRegistry(defaultRegion string, fallback Locale, regions ...Region) (*Registry, error) {
	r := &Registry{
		regions:  make([]Region, len(regions)),
		byName:   make(map[string]int, len(regions)),
		fallback: fallback,
	}
	copy(r.regions, regions)
	for i, reg := range r.regions {
		if _, dup := r.byName[reg.Name]; dup {
			return nil, fmt.Errorf("duplicate region %q", reg.Name)
		}
		r.byName[reg.Name] = i
	}
	def, ok := r.byName[defaultRegion]
	if !ok {
		return nil, fmt.Errorf("default region %q is not registered", defaultRegion)
	}
	r.def = def
	return r, nil
}

// Names returns the registered region names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.regions))
	for i, reg := range r.regions {
		names[i] = reg.Name
	}
	return names
}

// Has reports whether name is a registered region.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Resolve returns the locale chain for a region, falling back to the default
// region when name is unknown.
func (r *Registry) Resolve(name string) Chain {
	i, ok := r.byName[name]
	if !ok {
		i = r.def
	}
	primary := r.regions[i].Locale
	if primary.Code == r.fallback.Code {
		return Chain{primary}
	}
	return Chain{primary, r.fallback}
}

// DefaultRegistry returns the regions offered by the UI.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(DefaultRegion,
		Locale{Code: "en", Translator: en.New()},
		Region{Name: "English(US)", Locale: Locale{Code: "en_US", Translator: en_US.New()}},
		Region{Name: "French", Locale: Locale{Code: "fr", Translator: fr.New(), Lexicon: frenchLexicon}},
		Region{Name: "German", Locale: Locale{Code: "de", Translator: de.New(), Lexicon: germanLexicon}},
		Region{Name: "Spanish", Locale: Locale{Code: "es", Translator: es.New(), Lexicon: spanishLexicon}},
		Region{Name: "Italian", Locale: Locale{Code: "it", Translator: it.New(), Lexicon: italianLexicon}},
		Region{Name: "Japanese", Locale: Locale{Code: "ja", Translator: ja.New(), Lexicon: japaneseLexicon}},
	)
	if err != nil {
		panic(err)
	}
	return reg
}

var frenchLexicon = Lexicon{
	FirstNames:      []string{"Camille", "Léa", "Manon", "Chloé", "Louis", "Gabriel", "Hugo", "Jules", "Arthur", "Inès", "Lucas", "Émile"},
	LastNames:       []string{"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit", "Durand", "Leroy", "Moreau", "Lefèvre", "Fontaine"},
	Adjectives:      []string{"Élégant", "Rustique", "Ergonomique", "Fantastique", "Magnifique", "Pratique", "Incroyable", "Raffiné", "Génial", "Moderne"},
	Materials:       []string{"en Bois", "en Acier", "en Coton", "en Granit", "en Plastique", "en Béton", "en Caoutchouc", "en Métal"},
	Products:        []string{"Chaise", "Voiture", "Ordinateur", "Clavier", "Souris", "Vélo", "Ballon", "Gants", "Pantalon", "Chemise", "Table", "Chapeau"},
	CompanySuffixes: []string{"SA", "SARL", "et Fils", "Groupe"},
}

var germanLexicon = Lexicon{
	FirstNames:      []string{"Lukas", "Leon", "Finn", "Jonas", "Paul", "Emma", "Mia", "Hannah", "Sophie", "Lena", "Marie", "Felix"},
	LastNames:       []string{"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker", "Schulz", "Hoffmann", "Koch", "Richter"},
	Adjectives:      []string{"Ergonomischer", "Rustikaler", "Praktischer", "Fantastischer", "Eleganter", "Kleiner", "Großer", "Genialer", "Moderner", "Robuster"},
	Materials:       []string{"Holz", "Stahl", "Baumwoll", "Granit", "Kunststoff", "Beton", "Gummi", "Metall"},
	Products:        []string{"Stuhl", "Wagen", "Computer", "Tisch", "Schuh", "Hut", "Ball", "Handschuh", "Käse", "Fisch", "Schrank", "Sessel"},
	CompanySuffixes: []string{"GmbH", "AG", "KG", "GmbH & Co. KG", "OHG"},
}

var spanishLexicon = Lexicon{
	FirstNames:      []string{"Lucía", "Sofía", "Martina", "María", "Paula", "Hugo", "Mateo", "Martín", "Lucas", "Leo", "Daniel", "Alejandro"},
	LastNames:       []string{"García", "Rodríguez", "González", "Fernández", "López", "Martínez", "Sánchez", "Pérez", "Gómez", "Martín", "Jiménez", "Ruiz"},
	Adjectives:      []string{"Elegante", "Rústico", "Ergonómico", "Fantástico", "Práctico", "Increíble", "Genérico", "Sabroso", "Hecho a mano", "Moderno"},
	Materials:       []string{"de Madera", "de Acero", "de Algodón", "de Granito", "de Plástico", "de Hormigón", "de Caucho", "de Metal"},
	Products:        []string{"Silla", "Coche", "Ordenador", "Teclado", "Ratón", "Bicicleta", "Pelota", "Guantes", "Pantalones", "Camisa", "Mesa", "Sombrero"},
	CompanySuffixes: []string{"S.L.", "S.A.", "Hermanos", "y Asociados"},
}

// Italian has no company suffixes of its own; company names come from the fallback locale.
var italianLexicon = Lexicon{
	FirstNames: []string{"Leonardo", "Francesco", "Alessandro", "Lorenzo", "Mattia", "Sofia", "Giulia", "Aurora", "Alice", "Ginevra", "Emma", "Giorgia"},
	LastNames:  []string{"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano", "Colombo", "Ricci", "Marino", "Greco", "Bruno", "Gallo"},
	Adjectives: []string{"Elegante", "Rustico", "Ergonomico", "Fantastico", "Pratico", "Incredibile", "Piccolo", "Grande", "Raffinato", "Moderno"},
	Materials:  []string{"in Legno", "in Acciaio", "in Cotone", "in Granito", "in Plastica", "in Cemento", "in Gomma", "in Metallo"},
	Products:   []string{"Sedia", "Auto", "Computer", "Tastiera", "Mouse", "Bicicletta", "Pallone", "Guanti", "Pantaloni", "Camicia", "Tavolo", "Cappello"},
}

var japaneseLexicon = Lexicon{
	FirstNames:      []string{"太郎", "花子", "翔", "陽菜", "蓮", "結衣", "大輝", "美咲", "悠真", "さくら", "健太", "葵"},
	LastNames:       []string{"佐藤", "鈴木", "高橋", "田中", "伊藤", "渡辺", "山本", "中村", "小林", "加藤", "吉田", "山田"},
	Adjectives:      []string{"エレガントな", "素朴な", "人間工学的な", "素晴らしい", "実用的な", "小さな", "大きな", "洗練された", "モダンな", "頑丈な"},
	Materials:       []string{"木製", "鋼製", "綿製", "花崗岩製", "プラスチック製", "コンクリート製", "ゴム製", "金属製"},
	Products:        []string{"椅子", "車", "コンピューター", "キーボード", "マウス", "自転車", "ボール", "手袋", "ズボン", "シャツ", "テーブル", "帽子"},
	CompanySuffixes: []string{"株式会社", "有限会社", "合同会社"},
	LoremWords:      []string{"本", "物語", "世界", "時間", "心", "光", "夢", "旅", "言葉", "未来", "記憶", "季節", "友達", "海", "空"},
	FamilyNameFirst: true,
	Unspaced:        true,
}

package render

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Языки интерфейса; первый используется, когда ничего не подошло
var supported = []language.Tag{
	language.French,
	language.English,
	language.Spanish,
	language.Arabic,
}

var matcher = language.NewMatcher(supported)

// MatchLanguage maps a user supplied language ("en", "es-DZ", "ar") to one
// of the display languages. French is used when nothing matches.
func MatchLanguage(lang string) language.Tag {
	_, idx := language.MatchStrings(matcher, lang)
	return supported[idx]
}

type layouts struct {
	date      string
	timestamp string
}

var layoutsByLang = map[language.Tag]layouts{
	language.French:  {date: "02/01/2006", timestamp: "02/01/2006 15:04:05"},
	language.English: {date: "1/2/2006", timestamp: "1/2/2006, 3:04:05 PM"},
	language.Spanish: {date: "2/1/2006", timestamp: "2/1/2006, 15:04:05"},
	language.Arabic:  {date: "2/1/2006", timestamp: "2/1/2006 15:04:05"},
}

func layoutsFor(tag language.Tag) layouts {
	if l, ok := layoutsByLang[tag]; ok {
		return l
	}
	return layoutsByLang[supported[0]]
}

// TimestampFormatter returns the display timestamp format stored with each
// saved calculation for the given language.
func TimestampFormatter(lang string) func(time.Time) string {
	layout := layoutsFor(MatchLanguage(lang)).timestamp
	return func(t time.Time) string {
		return t.Format(layout)
	}
}

// Ключи сообщений; тексты содержат fmt-глаголы, поэтому знак процента удвоен
var translations = map[language.Tag]map[string]string{
	language.English: {
		"totalLandedCost":    "Total Landed Cost",
		"centimes":           "centimes",
		"totalForeign":       "Total %s",
		"costBreakdown":      "Cost Breakdown",
		"component":          "Component",
		"amount":             "Amount (DZD)",
		"rate":               "Rate",
		"carCost":            "Car Cost",
		"shippingLabel":      "Shipping Cost",
		"customsLabel":       "Customs Tax",
		"portLabel":          "Port & Admin Fees",
		"total":              "TOTAL",
		"parallel":           "Parallel",
		"official":           "Official",
		"fixed":              "Fixed",
		"vatSavings":         "✓ TVA savings: %s saved (%s DZD at parallel rate)",
		"calculationHistory": "Calculation History",
		"noHistory":          "No saved calculations.",
		"carPrice":           "Car Price",
		"shippingCost":       "Shipping Cost",
		"officialRate":       "Official Rate",
		"parallelRate":       "Parallel Rate",
		"customsTax":         "Customs Tax",
		"portFees":           "Port Fees",
		"tvaDeduce":          "TVA Deductible",
		"tvaYes":             "✓ Yes (19%%)",
		"historyLimitNote":   "Max %d calculations saved. Entries expire after 24 hours automatically.",
		"currencyRatesTitle": "Exchange Rate Reference",
		"currency":           "Currency",
		"updated":            "Updated: %s",
	},
	language.French: {
		"totalLandedCost":    "Coût Total Rendu",
		"centimes":           "centimes",
		"totalForeign":       "Total %s",
		"costBreakdown":      "Ventilation des Coûts",
		"component":          "Composant",
		"amount":             "Montant (DZD)",
		"rate":               "Taux",
		"carCost":            "Coût Voiture",
		"shippingLabel":      "Coût Livraison",
		"customsLabel":       "Taxe Douanière",
		"portLabel":          "Frais Port & Admin",
		"total":              "TOTAL",
		"parallel":           "Parallèle",
		"official":           "Officiel",
		"fixed":              "Fixe",
		"vatSavings":         "✓ Économie TVA: %s économisés (%s DZD au taux parallèle)",
		"calculationHistory": "Historique des Calculs",
		"noHistory":          "Aucun calcul enregistré.",
		"carPrice":           "Prix Voiture",
		"shippingCost":       "Frais Livraison",
		"officialRate":       "Taux Officiel",
		"parallelRate":       "Taux Parallèle",
		"customsTax":         "Taxe Douanière",
		"portFees":           "Frais Port",
		"tvaDeduce":          "TVA Déductible",
		"tvaYes":             "✓ Oui (19%%)",
		"historyLimitNote":   "%d calculs maximum. Les entrées expirent automatiquement après 24 heures.",
		"currencyRatesTitle": "Référence des Taux de Change",
		"currency":           "Devise",
		"updated":            "Mis à jour : %s",
	},
	language.Spanish: {
		"totalLandedCost":    "Costo Total Entregado",
		"centimes":           "céntimos",
		"totalForeign":       "Total %s",
		"costBreakdown":      "Desglose de Costos",
		"component":          "Componente",
		"amount":             "Monto (DZD)",
		"rate":               "Tasa",
		"carCost":            "Costo del Auto",
		"shippingLabel":      "Costo de Envío",
		"customsLabel":       "Impuesto Aduanal",
		"portLabel":          "Aranceles Portuarios y Admin",
		"total":              "TOTAL",
		"parallel":           "Paralela",
		"official":           "Oficial",
		"fixed":              "Fijo",
		"vatSavings":         "✓ Ahorro de IVA: %s ahorrados (%s DZD a tasa paralela)",
		"calculationHistory": "Historial de Cálculos",
		"noHistory":          "No hay cálculos guardados.",
		"carPrice":           "Precio del Auto",
		"shippingCost":       "Costo de Envío",
		"officialRate":       "Tasa Oficial",
		"parallelRate":       "Tasa Paralela",
		"customsTax":         "Impuesto Aduanal",
		"portFees":           "Aranceles Portuarios",
		"tvaDeduce":          "IVA Deducible",
		"tvaYes":             "✓ Sí (19%%)",
		"historyLimitNote":   "Máximo %d cálculos guardados. Las entradas caducan a las 24 horas.",
		"currencyRatesTitle": "Referencia de Tasas de Cambio",
		"currency":           "Moneda",
		"updated":            "Actualizado: %s",
	},
	language.Arabic: {
		"totalLandedCost":    "إجمالي التكلفة",
		"centimes":           "سنتيم",
		"totalForeign":       "الإجمالي %s",
		"costBreakdown":      "تفصيل التكاليف",
		"component":          "المكون",
		"amount":             "المبلغ (دج)",
		"rate":               "السعر",
		"carCost":            "تكلفة السيارة",
		"shippingLabel":      "تكلفة الشحن",
		"customsLabel":       "الضريبة الجمركية",
		"portLabel":          "رسوم الميناء والإدارة",
		"total":              "الإجمالي",
		"parallel":           "موازي",
		"official":           "رسمي",
		"fixed":              "ثابت",
		"vatSavings":         "✓ توفير الضريبة: %s (%s دج بالسعر الموازي)",
		"calculationHistory": "سجل الحسابات",
		"noHistory":          "لا توجد حسابات محفوظة.",
		"carPrice":           "سعر السيارة",
		"shippingCost":       "رسوم الشحن",
		"officialRate":       "السعر الرسمي",
		"parallelRate":       "السعر الموازي",
		"customsTax":         "الضريبة الجمركية",
		"portFees":           "رسوم الميناء",
		"tvaDeduce":          "الضريبة القابلة للخصم",
		"tvaYes":             "✓ نعم (19%%)",
		"historyLimitNote":   "الحد الأقصى %d حسابات. تنتهي صلاحية السجلات بعد 24 ساعة.",
		"currencyRatesTitle": "مرجع أسعار الصرف",
		"currency":           "العملة",
		"updated":            "تحديث: %s",
	},
}

var messages = mustCatalog()

func mustCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, dict := range translations {
		for key, msg := range dict {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}

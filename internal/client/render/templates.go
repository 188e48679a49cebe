package render

const resultTemplate = `
# {{t "totalLandedCost"}}

**{{local .Res.TotalLocal 0}} DZD**

{{local .Res.TotalLocal 0}} {{t "centimes"}} · {{t "totalForeign" .Currency}}: {{foreign .Res.TotalForeign}}

{{t "parallel"}}: {{local .In.ParallelRate 0}} | {{t "official"}}: {{local .In.OfficialRate 0}}

## {{t "costBreakdown"}}

| {{t "component"}} | {{t "amount"}} | {{t "rate"}} |
| --- | ---: | --- |
| {{t "carCost"}}{{if .In.VATDeductible}} (−19% TVA){{end}} | {{local .Res.CarCostLocal 0}} | {{t "parallel"}} ({{local .In.ParallelRate 0}}) |
| {{t "shippingLabel"}} | {{local .Res.ShippingCostLocal 0}} | {{t "parallel"}} ({{local .In.ParallelRate 0}}) |
| {{t "customsLabel"}} ({{percent .In.CustomsTaxPercent}}%) | {{local .Res.CustomsTax 0}} | {{t "official"}} ({{local .In.OfficialRate 0}}) |
| {{t "portLabel"}} | {{local .Res.PortFees 0}} | {{t "fixed"}} |
| **{{t "total"}}** | **{{local .Res.TotalLocal 0}}** | |
{{- if .In.VATDeductible}}

{{t "vatSavings" (foreign .Res.VATSaved) (local .VATSavedLocal 0)}}
{{- end}}
`

const historyTemplate = `
## {{t "calculationHistory"}} ({{len .Entries}}/{{.Limit}})
{{- if not .Entries}}

_{{t "noHistory"}}_
{{- end}}
{{- range .Entries}}

### {{.CarName}}

{{.Timestamp}} · id ` + "`{{.ID}}`" + `

| {{t "amount"}} | {{t "centimes"}} | {{t "totalForeign" $.Currency}} |
| ---: | ---: | ---: |
| {{local .TotalDZD 0}} | {{local .Centimes 0}} | {{foreign .TotalEUR}} |

- {{t "carPrice"}}: {{foreign .Inputs.CarPrice}}
- {{t "shippingCost"}}: {{foreign .Inputs.Shipping}}
- {{t "officialRate"}}: {{local .Inputs.OffRate 0}}
- {{t "parallelRate"}}: {{local .Inputs.ParRate 0}}
- {{t "customsTax"}}: {{percent .Inputs.TaxPct}}%
- {{t "portFees"}}: {{local .Inputs.PortFees 0}}
{{- if .Inputs.VAT}}
- {{t "tvaDeduce"}}: {{t "tvaYes"}}
{{- end}}
{{- end}}

_{{t "historyLimitNote" .Limit}}_
`

const ratesTemplate = `
## {{t "currencyRatesTitle"}}

| {{t "currency"}} | {{t "official"}} | {{t "parallel"}} |
| --- | ---: | ---: |
{{- range .Currencies}}
| {{.Flag}} {{.Code}} ({{.Name}}) | {{local .Official 2}} | {{local .Parallel 2}} |
{{- end}}

_{{t "updated" .Updated}}_
`

package money_test

import (
	"fmt"

	"github.com/govalues/decimal"

	"github.com/pago46/money"
	"github.com/pago46/money/expr"
)

func ExampleNew() {
	a, err := money.New("USD", 0.1)
	fmt.Println(a.Decimal(), err)
	b, err := money.New("EUR", "12.345")
	fmt.Println(b.Decimal(), err)
	c, err := money.New("JPY", 7)
	fmt.Println(c.Decimal(), err)
	// Output:
	// 0.10 <nil>
	// 12.345 <nil>
	// 7.00 <nil>
}

func ExampleParseAmount() {
	a, err := money.ParseAmount("USD", "1234.5")
	fmt.Println(a, err)
	fmt.Println(a.Localized(false))
	// Output:
	// $1,234.50 <nil>
	// US$1,234.50
}

func ExampleNewFactory() {
	cfg := money.DefaultConfig()
	cfg.DecimalPlacesPerCurrency = map[string]int{"JPY": 0}
	cfg.DisplayDecimalPlacesPerCurrency = map[string]int{"JPY": 0}
	f, err := money.NewFactory(cfg)
	if err != nil {
		panic(err)
	}
	a := f.MustParseAmount("JPY", "19.99")
	fmt.Println(a.Decimal())
	fmt.Println(a)
	// Output:
	// 19
	// ¥19
}

func ExampleParseConfig() {
	cfg, err := money.ParseConfig([]byte("decimal_places: 0\nlanguage_code: de\n"))
	if err != nil {
		panic(err)
	}
	f := money.MustNewFactory(cfg)
	fmt.Println(f.MustParseAmount("EUR", "1234.56"))
	// Output: 1.234 €
}

func ExampleAmount_Add() {
	a := money.MustParseAmount("USD", "10")
	b := money.MustParseAmount("USD", "2.5")
	fmt.Println(a.Add(b))
	_, err := a.Add(money.MustParseAmount("EUR", "1"))
	fmt.Println(err)
	// Output:
	// $12.50 <nil>
	// computing [USD 10.00 + EUR 1.00]: currency mismatch
}

func ExampleAmount_Add_autoConvert() {
	r := money.MustParseExchRate("EUR", "USD", "1.25")
	conv := money.ConverterFunc(func(a money.Amount, _ money.Currency) (money.Amount, error) {
		return r.Conv(a)
	})
	cfg := money.DefaultConfig()
	cfg.AutoConvert = true
	f := money.MustNewFactory(cfg, money.WithConverter(conv))

	a := f.MustParseAmount("USD", "10")
	b := f.MustParseAmount("EUR", "8")
	fmt.Println(a.Add(b))
	// Output: $20.00 <nil>
}

func ExampleAmount_Equal() {
	a := money.MustParseAmount("USD", "10")
	fmt.Println(a.Equal(money.MustParseAmount("USD", "10.000")))
	fmt.Println(a.Equal(money.MustParseAmount("EUR", "10")))
	// Output:
	// true
	// false
}

func ExampleAmount_Cmp() {
	a := money.MustParseAmount("USD", "1")
	fmt.Println(a.Cmp(money.MustParseAmount("USD", "2")))
	_, err := a.Cmp(money.MustParseAmount("EUR", "1"))
	fmt.Println(err)
	// Output:
	// -1 <nil>
	// comparing [USD 1.00] and [EUR 1.00]: currency mismatch
}

func ExampleAmount_Round() {
	a := money.MustParseAmount("USD", "2.345")
	fmt.Println(a.Round(2).Decimal())
	fmt.Println(a.Round(2).Round(2).Decimal())
	// Output:
	// 2.34
	// 2.34
}

func ExampleAmount_Split() {
	a := money.MustParseAmount("USD", "1")
	fmt.Println(a.Split(3))
	// Output: [$0.34 $0.33 $0.33] <nil>
}

func ExampleAmount_Mul() {
	a := money.MustParseAmount("USD", "5.75")
	fmt.Println(a.Mul(decimal.MustParse("3.3")))
	// Output: $18.98 <nil>
}

func ExampleAmount_Apply() {
	a := money.MustParseAmount("USD", "10")

	res, _ := a.Apply(money.OpMul, 3)
	b, _ := res.Amount()
	fmt.Println(b)

	res, _ = a.Apply(money.OpAdd, expr.F("balance"))
	d, _ := res.Deferred()
	fmt.Println(d.(expr.Expr).SQL())
	// Output:
	// $30.00
	// (? + "balance") [10.00]
}

func ExampleAmount_StringLocale() {
	a := money.MustParseAmount("EUR", "1234.5")
	fmt.Println(a.StringLocale("de"))
	fmt.Println(a.StringLocale("fr"))
	fmt.Println(a.StringLocale("nl"))
	// Output:
	// 1.234,50 €
	// 1 234,50 €
	// € 1.234,50
}

func ExampleAmount_HTML() {
	a := money.MustParseAmount("OMR", "5")
	fmt.Println(a.HTML())
	// Output: OMR&nbsp;5.00
}

func ExampleAmount_Format() {
	a := money.MustParseAmount("USD", "5.678")
	fmt.Printf("%v %f %d %c\n", a, a, a, a)
	fmt.Printf("%#v\n", a)
	// Output:
	// $5.68 5.678 568 USD
	// money.MustParseAmount("USD", "5.678")
}

func ExampleResolveLocale() {
	fm := money.DefaultFormats()
	fmt.Printf("%q\n", money.ResolveLocale("fr", "en-us", fm))
	fmt.Printf("%q\n", money.ResolveLocale("", "en-us", fm))
	fmt.Printf("%q\n", money.ResolveLocale("zh", "en-us", fm))
	// Output:
	// "FR_FR"
	// "EN_US"
	// ""
}

func ExampleParseCurr() {
	c, err := money.ParseCurr("eur")
	fmt.Println(c, c.Num(), c.Scale(), c.Symbol(), err)
	// Output: EUR 978 2 € <nil>
}

func ExampleExchangeRate_Conv() {
	r := money.MustParseExchRate("USD", "JPY", "133.27")
	b := money.MustParseAmount("USD", "200")
	c, err := r.Conv(b)
	fmt.Println(c.Decimal(), err)
	// Output: 26654.0000 <nil>
}

func ExampleExchangeRate_Inv() {
	r := money.MustParseExchRate("EUR", "USD", "1.25")
	fmt.Println(r.Inv())
	// Output: USD/EUR 0.8000 <nil>
}

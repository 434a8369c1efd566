/*
Copyright © 2026 the Conversor authors.
This file is part of Conversor.

Conversor is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Conversor is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Conversor.  If not, see <http://www.gnu.org/licenses/>.
*/

package conversor

import (
	"math"

	"github.com/ctessum/unit"
)

// bitDim is the dimension of information, which has no SI equivalent.
var bitDim = unit.NewDimension("bit")

// Exact definitions shared by several tables.
const (
	inch         = 0.0254             // m
	foot         = 0.3048             // m
	pound        = 453.59237          // g
	footPound    = 1.3558179483314004 // J
	btu          = 1055.05585262      // J, International Table
	usFluidOunce = 29.5735295625      // mL
	ukFluidOunce = 28.4130625         // mL
	nauticalMile = 1852.0             // m
	daysPerYear  = 365.0              // anios are common years
)

// Temperature has the base unit celsius.
var Temperature = newDomain("temperatura", "Temperatura", "celsius", "kelvin",
	unit.Kelvin,
	[]string{"tmp", "temp", "temperature", "temperaturas", "temperatures"},
	affine("celsius", 1, 0, "c", "°C", "°c", "centigrados", "centigrade"),
	affine("kelvin", 1, 273.15, "k", "K"),
	affine("fahrenheit", 5.0/9.0, 32, "f", "°F", "°f", "farenheit"),
)

// Length has the base unit metros.
var Length = newDomain("longitud", "Longitud", "metros", "metros",
	unit.Meter,
	[]string{"l", "len", "long", "length", "distancia", "distance", "distances"},
	lin("angstroms", 1e-10, "Å", "a", "an", "angstrom", "ångström", "ångströms"),
	lin("nanometros", 1e-9, "nm", "nanometro", "nanometer", "nanometers"),
	lin("micrones", 1e-6, "µm", "μm", "um", "micrometro", "micrometros", "micron", "microns", "micrometer", "micrometers"),
	lin("milimetros", 1e-3, "mm", "milimetro", "millimeter", "millimeters"),
	lin("centimetros", 1e-2, "cm", "centimetro", "centimeter", "centimeters"),
	lin("metros", 1, "m", "metro", "meter", "meters"),
	lin("kilometros", 1e3, "km", "kilometro", "kilometer", "kilometers"),
	lin("pulgadas", inch, "in", "pulgada", "inch", "inches"),
	lin("pies", foot, "ft", "pie", "foot", "feet"),
	lin("yardas", 3*foot, "yd", "yarda", "yard", "yards"),
	lin("millas", 5280*foot, "mi", "milla", "mile", "miles"),
	lin("millas_nauticas", nauticalMile, "nmi", "milla nautica", "nautical mile", "nautical miles"),
	lin("unidad_astronomica", 1.495978707e11, "ua", "au", "unidades astronomicas", "astronomical unit", "astronomical units"),
	lin("anio_luz", 9.4607304725808e15, "al", "ly", "año luz", "años luz", "light-year", "lightyear", "light-years", "lightyears"),
	lin("parsec", 3.0856775814913673e16, "pc", "parsecs"),
)

// Mass has the base unit gramos.
var Mass = newDomain("masa", "Masa", "gramos", "kilogramos",
	unit.Kilogram,
	[]string{"m", "mass", "peso", "weight"},
	lin("miligramos", 1e-3, "mg", "miligramo", "milligram", "milligrams"),
	lin("centigramos", 1e-2, "cg", "centigramo", "centigram", "centigrams"),
	lin("decigramos", 1e-1, "dg", "decigramo", "decigram", "decigrams"),
	lin("quilates", 0.2, "ct", "q", "qi", "quilate", "carat", "carats"),
	lin("gramos", 1, "g", "gr", "gramo", "gram", "grams"),
	lin("decagramos", 1e1, "dag", "decagramo", "decagram", "decagrams"),
	lin("hectogramos", 1e2, "hg", "hectogramo", "hectogram", "hectograms"),
	lin("kilogramos", 1e3, "kg", "kilogramo", "kilogram", "kilograms"),
	lin("toneladas_metricas", 1e6, "t", "ton", "tonelada", "toneladas", "tonelada metrica", "tonne", "tonnes", "metric ton", "metric tons"),
	lin("onzas", pound/16, "oz", "onza", "ounce", "ounces"),
	lin("libras", pound, "lb", "lbs", "libra", "pound", "pounds"),
	lin("piedra", 14*pound, "st", "piedras", "stone", "stones"),
	lin("toneladas_cortas_eeuu", 2000*pound, "tc", "ston", "tonelada corta", "toneladas cortas", "short ton", "short tons", "us ton", "us tons"),
	lin("toneladas_largas_uk", 2240*pound, "lt", "tl", "tonelada larga", "toneladas largas", "long ton", "long tons", "uk ton", "uk tons"),
)

// Volume has the base unit mililitros.
var Volume = newDomain("volumen", "Volumen", "mililitros", "metros_cubicos",
	unit.Meter3,
	[]string{"vol", "volume"},
	lin("mililitros", 1, "ml", "mL", "mililitro", "milliliter", "milliliters"),
	lin("centimetros_cubicos", 1, "cm3", "cm^3", "cc", "centimetro cubico", "cubic centimeter", "cubic centimeters"),
	lin("litros", 1e3, "l", "L", "litro", "liter", "liters"),
	lin("metros_cubicos", 1e6, "m3", "m^3", "metro cubico", "cubic meter", "cubic meters"),
	lin("cucharaditas_us", usFluidOunce/6, "tsp", "cucharadita", "cucharaditas", "teaspoon", "teaspoons", "us tsp", "us teaspoon"),
	lin("cucharadas_us", usFluidOunce/2, "tbsp", "cucharada", "cucharadas", "tablespoon", "tablespoons", "us tbsp", "us tablespoon"),
	lin("onzas_liquidas_us", usFluidOunce, "fl oz", "onza liquida", "onzas liquidas", "fluid ounce", "fluid ounces", "us fl oz", "us fluid ounce"),
	lin("tazas_us", 8*usFluidOunce, "cup", "cups", "taza", "tazas", "us cup", "us cups"),
	lin("pintas_us", 16*usFluidOunce, "pt", "pinta", "pintas", "pint", "pints", "us pint", "us pints"),
	lin("cuartos_de_galon_us", 32*usFluidOunce, "qt", "cuarto de galon", "quart", "quarts", "us qt", "us quart"),
	lin("galones_us", 128*usFluidOunce, "gal", "galon", "galones", "gallon", "gallons", "us gal", "us gallon"),
	lin("pulgadas_cubicas", 16.387064, "in3", "in^3", "pulgada cubica", "cubic inch", "cubic inches"),
	lin("pies_cubicos", 28316.846592, "ft3", "ft^3", "pie cubico", "cubic foot", "cubic feet"),
	lin("yardas_cubicas", 764554.857984, "yd3", "yd^3", "yarda cubica", "cubic yard", "cubic yards"),
	lin("cucharaditas_uk", ukFluidOunce*5/24, "uk tsp", "cucharadita uk", "uk teaspoon", "uk teaspoons"),
	lin("cucharadas_uk", ukFluidOunce*5/8, "uk tbsp", "cucharada uk", "uk tablespoon", "uk tablespoons"),
	lin("onzas_liquidas_uk", ukFluidOunce, "uk fl oz", "onza liquida uk", "uk fluid ounce", "uk fluid ounces"),
	lin("pintas_uk", 20*ukFluidOunce, "uk pt", "pinta uk", "uk pint", "uk pints"),
	lin("cuartos_de_galon_uk", 40*ukFluidOunce, "uk qt", "cuarto de galon uk", "uk quart", "uk quarts"),
	lin("galones_uk", 160*ukFluidOunce, "uk gal", "galon uk", "uk gallon", "uk gallons"),
)

// Energy has the base unit julios.
var Energy = newDomain("energia", "Energía", "julios", "julios",
	unit.Joule,
	[]string{"e", "en", "eng", "energía", "energy", "nrg"},
	lin("julios", 1, "J", "j", "julio", "joule", "joules"),
	lin("kilojulios", 1e3, "kJ", "kj", "kilojulio", "kilojoule", "kilojoules"),
	lin("calorias_termales", 4.184, "cal", "caloria termal", "caloría termal", "calorías termales", "thermal calorie", "thermal calories"),
	lin("calorias_alimentos", 4184, "kcal", "Cal", "caloria alimento", "caloría alimento", "calorías alimentos", "food calorie", "food calories", "kilocalorie", "kilocalories"),
	lin("pie_libras", footPound, "ft-lb", "ft·lbf", "pie-libra", "pie-libras", "foot-pound", "foot-pounds"),
	lin("unidades_termicas_britanicas", btu, "btu", "BTU", "unidad termica britanica", "british thermal unit", "british thermal units"),
	lin("kilovatio_horas", 3.6e6, "kWh", "kwh", "kw-h", "kilovatio hora", "kilowatt-hour", "kilowatt-hours"),
)

// Area has the base unit metros_cuadrados.
var Area = newDomain("area", "Área", "metros_cuadrados", "metros_cuadrados",
	unit.Meter2,
	[]string{"área", "surface", "superficie"},
	lin("milimetros_cuadrados", 1e-6, "mm2", "mm^2", "milimetro cuadrado", "square millimeter", "square millimeters"),
	lin("centimetros_cuadrados", 1e-4, "cm2", "cm^2", "centimetro cuadrado", "square centimeter", "square centimeters"),
	lin("metros_cuadrados", 1, "m2", "m^2", "metro cuadrado", "square meter", "square meters"),
	lin("hectareas", 1e4, "ha", "hectarea", "hectare", "hectares"),
	lin("kilometros_cuadrados", 1e6, "km2", "km^2", "kilometro cuadrado", "square kilometer", "square kilometers"),
	lin("pulgadas_cuadradas", inch*inch, "in2", "in^2", "pulgada cuadrada", "square inch", "square inches"),
	lin("pies_cuadrados", foot*foot, "ft2", "ft^2", "pie cuadrado", "square foot", "square feet"),
	lin("yardas_cuadradas", 9*foot*foot, "yd2", "yd^2", "yarda cuadrada", "square yard", "square yards"),
	lin("acres", 43560*foot*foot, "ac", "acre"),
	lin("millas_cuadradas", 5280*5280*foot*foot, "mi2", "mi^2", "milla cuadrada", "square mile", "square miles"),
)

// Speed has the base unit metros_por_segundo.
var Speed = newDomain("velocidad", "Velocidad", "metros_por_segundo", "metros_por_segundo",
	unit.MeterPerSecond,
	[]string{"vel", "speed", "velocity"},
	lin("centimetros_por_segundo", 1e-2, "cm/s", "cmps", "centimetro por segundo", "centimeter per second", "centimeters per second"),
	lin("metros_por_segundo", 1, "m/s", "mps", "metro por segundo", "meter per second", "meters per second"),
	lin("kilometros_por_hora", 1000.0/3600, "km/h", "kph", "kmh", "kilometro por hora", "kilometer per hour", "kilometers per hour"),
	lin("pies_por_segundo", foot, "ft/s", "fps", "pie por segundo", "foot per second", "feet per second"),
	lin("millas_por_hora", 5280*foot/3600, "mph", "mi/h", "milla por hora", "mile per hour", "miles per hour"),
	lin("nudos", nauticalMile/3600, "kn", "kt", "nudo", "knot", "knots"),
	lin("mach", 340.29, "ma"),
)

// Time has the base unit segundos.
var Time = newDomain("tiempo", "Tiempo", "segundos", "segundos",
	unit.Second,
	[]string{"time", "duracion", "duración", "duration"},
	lin("microsegundos", 1e-6, "µs", "μs", "us", "microsegundo", "microsecond", "microseconds"),
	lin("milisegundos", 1e-3, "ms", "milisegundo", "millisecond", "milliseconds"),
	lin("segundos", 1, "s", "seg", "segundo", "second", "seconds"),
	lin("minutos", 60, "min", "minuto", "minute", "minutes"),
	lin("horas", 3600, "h", "hr", "hora", "hour", "hours"),
	lin("dias", 86400, "d", "dia", "día", "días", "day", "days"),
	lin("semanas", 7*86400, "wk", "semana", "week", "weeks"),
	lin("anios", daysPerYear*86400, "yr", "año", "años", "anio", "year", "years"),
)

// Power has the base unit vatios.
var Power = newDomain("potencia", "Potencia", "vatios", "vatios",
	unit.Watt,
	[]string{"pow", "poder", "power"},
	lin("vatios", 1, "W", "w", "vatio", "watt", "watts"),
	lin("kilovatios", 1e3, "kW", "kw", "kilovatio", "kilowatt", "kilowatts"),
	lin("caballos_de_fuerza_eeuu", 550*footPound, "hp", "caballo de fuerza", "caballos de fuerza", "horsepower", "us hp"),
	lin("pie_libras_por_minuto", footPound/60, "ft-lb/min", "pie-libra por minuto", "pie-libras por minuto", "foot-pound per minute", "foot-pounds per minute"),
	lin("unidades_termicas_britanicas_por_minuto", btu/60, "btu/min", "BTU/min", "unidad termica britanica por minuto", "british thermal unit per minute", "british thermal units per minute"),
)

// Angle has the base unit grados.
var Angle = newDomain("angulos", "Ángulos", "grados", "radianes",
	unit.Dimensions{unit.AngleDim: 1},
	[]string{"ang", "angulo", "ángulo", "ángulos", "angle", "angles"},
	affine("grados", 1, 0, "°", "deg", "grado", "degree", "degrees"),
	affine("radianes", 180/math.Pi, 0, "rad", "radian", "radians"),
	affine("grados_centesimales", 0.9, 0, "gon", "grad", "gradian", "gradians", "gradianes", "grado centesimal"),
)

// Pressure has the base unit pascales.
var Pressure = newDomain("presion", "Presión", "pascales", "pascales",
	unit.Pascal,
	[]string{"pres", "presión", "pressure"},
	lin("atmosferas", 101325, "atm", "atmosfera", "atmósfera", "atmosphere", "atmospheres"),
	lin("bares", 1e5, "bar"),
	lin("kilopascales", 1e3, "kPa", "kpa", "kilopascal", "kilopascals"),
	lin("milimetros_de_mercurio", 101325.0/760, "mmHg", "mmhg", "milimetro de mercurio", "millimeter of mercury", "millimeters of mercury"),
	lin("pascales", 1, "Pa", "pa", "pascal", "pascals"),
	lin("libras_por_pulgada_cuadrada", pound/1000*9.80665/(inch*inch), "psi", "libra por pulgada cuadrada", "pound per square inch", "pounds per square inch"),
)

// Data has the base unit bits. Decimal prefixes are powers of 1000 and
// binary prefixes powers of 1024.
var Data = newDomain("datos", "Datos", "bits", "bits",
	unit.Dimensions{bitDim: 1},
	[]string{"data", "bytes", "bits", "almacenamiento", "storage"},
	lin("bits", 1, "bit"),
	lin("cuarteto", 4, "nibble", "nibbles", "cuartetos"),
	lin("bytes", 8, "B", "b", "byte", "octeto", "octetos"),
	lin("kilobits", 1e3, "kb", "kbit", "kilobit"),
	lin("kibibits", 1<<10, "Kib", "kibit", "kibibit"),
	lin("kilobytes", 8e3, "kB", "KB", "kilobyte"),
	lin("kibibytes", 8<<10, "KiB", "kibibyte"),
	lin("megabits", 1e6, "Mb", "mbit", "megabit"),
	lin("mebibits", 1<<20, "Mib", "mibit", "mebibit"),
	lin("megabytes", 8e6, "MB", "megabyte"),
	lin("mebibytes", 8<<20, "MiB", "mebibyte"),
	lin("gigabits", 1e9, "Gb", "gbit", "gigabit"),
	lin("gibibits", 1<<30, "Gib", "gibit", "gibibit"),
	lin("gigabytes", 8e9, "GB", "gigabyte"),
	lin("gibibytes", 8<<30, "GiB", "gibibyte"),
	lin("terabits", 1e12, "Tb", "tbit", "terabit"),
	lin("tebibits", 1<<40, "Tib", "tibit", "tebibit"),
	lin("terabytes", 8e12, "TB", "terabyte"),
	lin("tebibytes", 8<<40, "TiB", "tebibyte"),
	lin("petabits", 1e15, "Pb", "pbit", "petabit"),
	lin("pebibits", 1<<50, "Pib", "pibit", "pebibit"),
	lin("petabytes", 8e15, "PB", "petabyte"),
	lin("pebibytes", 8<<50, "PiB", "pebibyte"),
	lin("exabits", 1e18, "Eb", "ebit", "exabit"),
	lin("exbibits", 1<<60, "Eib", "eibit", "exbibit"),
	lin("exabytes", 8e18, "EB", "exabyte"),
	lin("exbibytes", 8*(1<<60), "EiB", "exbibyte"),
	lin("zettabits", 1e21, "Zb", "zbit", "zettabit"),
	lin("zebibits", 1<<70, "Zib", "zibit", "zebibit"),
	lin("zettabytes", 8e21, "ZB", "zettabyte"),
	lin("zebibytes", 8*(1<<70), "ZiB", "zebibyte"),
	lin("yottabits", 1e24, "Yb", "ybit", "yottabit"),
	lin("yobibits", 1<<80, "Yib", "yibit", "yobibit"),
	lin("yottabytes", 8e24, "YB", "yottabyte"),
	lin("yobibytes", 8*(1<<80), "YiB", "yobibyte"),
)

// ConvertTemperature converts value between celsius, kelvin and fahrenheit.
func ConvertTemperature(value float64, from, to string) (float64, error) {
	return Temperature.Convert(value, from, to)
}

// ConvertLength converts value between units of length.
func ConvertLength(value float64, from, to string) (float64, error) {
	return Length.Convert(value, from, to)
}

// ConvertMass converts value between units of mass.
func ConvertMass(value float64, from, to string) (float64, error) {
	return Mass.Convert(value, from, to)
}

// ConvertVolume converts value between units of volume.
func ConvertVolume(value float64, from, to string) (float64, error) {
	return Volume.Convert(value, from, to)
}

// ConvertEnergy converts value between units of energy.
func ConvertEnergy(value float64, from, to string) (float64, error) {
	return Energy.Convert(value, from, to)
}

// ConvertArea converts value between units of area.
func ConvertArea(value float64, from, to string) (float64, error) {
	return Area.Convert(value, from, to)
}

// ConvertSpeed converts value between units of speed.
func ConvertSpeed(value float64, from, to string) (float64, error) {
	return Speed.Convert(value, from, to)
}

// ConvertTime converts value between units of time.
func ConvertTime(value float64, from, to string) (float64, error) {
	return Time.Convert(value, from, to)
}

// ConvertPower converts value between units of power.
func ConvertPower(value float64, from, to string) (float64, error) {
	return Power.Convert(value, from, to)
}

// ConvertAngle converts value between grados, radianes and
// grados_centesimales.
func ConvertAngle(value float64, from, to string) (float64, error) {
	return Angle.Convert(value, from, to)
}

// ConvertPressure converts value between units of pressure.
func ConvertPressure(value float64, from, to string) (float64, error) {
	return Pressure.Convert(value, from, to)
}

// ConvertData converts value between units of digital information.
func ConvertData(value float64, from, to string) (float64, error) {
	return Data.Convert(value, from, to)
}

package locating

import "github.com/vfg2006/agency-dashboard-api/internal/domain"

// coordinates é a tabela estática de países e cidades mais usados em
// segmentação pelas contas da agência. Editável à mão; a chave é sempre
// minúscula.
var coordinates = map[string]domain.Coordinate{
	// Países
	"brazil":               {Lat: -14.2350, Lng: -51.9253},
	"united states":        {Lat: 37.0902, Lng: -95.7129},
	"canada":               {Lat: 56.1304, Lng: -106.3468},
	"mexico":               {Lat: 23.6345, Lng: -102.5528},
	"argentina":            {Lat: -38.4161, Lng: -63.6167},
	"chile":                {Lat: -35.6751, Lng: -71.5430},
	"colombia":             {Lat: 4.5709, Lng: -74.2973},
	"peru":                 {Lat: -9.1900, Lng: -75.0152},
	"united kingdom":       {Lat: 55.3781, Lng: -3.4360},
	"ireland":              {Lat: 53.1424, Lng: -7.6921},
	"france":               {Lat: 46.2276, Lng: 2.2137},
	"germany":              {Lat: 51.1657, Lng: 10.4515},
	"spain":                {Lat: 40.4637, Lng: -3.7492},
	"portugal":             {Lat: 39.3999, Lng: -8.2245},
	"italy":                {Lat: 41.8719, Lng: 12.5674},
	"netherlands":          {Lat: 52.1326, Lng: 5.2913},
	"belgium":              {Lat: 50.5039, Lng: 4.4699},
	"switzerland":          {Lat: 46.8182, Lng: 8.2275},
	"austria":              {Lat: 47.5162, Lng: 14.5501},
	"sweden":               {Lat: 60.1282, Lng: 18.6435},
	"norway":               {Lat: 60.4720, Lng: 8.4689},
	"denmark":              {Lat: 56.2639, Lng: 9.5018},
	"finland":              {Lat: 61.9241, Lng: 25.7482},
	"poland":               {Lat: 51.9194, Lng: 19.1451},
	"czech republic":       {Lat: 49.8175, Lng: 15.4730},
	"greece":               {Lat: 39.0742, Lng: 21.8243},
	"turkey":               {Lat: 38.9637, Lng: 35.2433},
	"russia":               {Lat: 61.5240, Lng: 105.3188},
	"ukraine":              {Lat: 48.3794, Lng: 31.1656},
	"china":                {Lat: 35.8617, Lng: 104.1954},
	"japan":                {Lat: 36.2048, Lng: 138.2529},
	"south korea":          {Lat: 35.9078, Lng: 127.7669},
	"india":                {Lat: 20.5937, Lng: 78.9629},
	"indonesia":            {Lat: -0.7893, Lng: 113.9213},
	"thailand":             {Lat: 15.8700, Lng: 100.9925},
	"vietnam":              {Lat: 14.0583, Lng: 108.2772},
	"philippines":          {Lat: 12.8797, Lng: 121.7740},
	"malaysia":             {Lat: 4.2105, Lng: 101.9758},
	"singapore":            {Lat: 1.3521, Lng: 103.8198},
	"australia":            {Lat: -25.2744, Lng: 133.7751},
	"new zealand":          {Lat: -40.9006, Lng: 174.8860},
	"south africa":         {Lat: -30.5595, Lng: 22.9375},
	"nigeria":              {Lat: 9.0820, Lng: 8.6753},
	"kenya":                {Lat: -0.0236, Lng: 37.9062},
	"egypt":                {Lat: 26.8206, Lng: 30.8025},
	"morocco":              {Lat: 31.7917, Lng: -7.0926},
	"israel":               {Lat: 31.0461, Lng: 34.8516},
	"saudi arabia":         {Lat: 23.8859, Lng: 45.0792},
	"united arab emirates": {Lat: 23.4241, Lng: 53.8478},
	"qatar":                {Lat: 25.3548, Lng: 51.1839},

	// Cidades
	"sao paulo":      {Lat: -23.5505, Lng: -46.6333},
	"rio de janeiro": {Lat: -22.9068, Lng: -43.1729},
	"belo horizonte": {Lat: -19.9167, Lng: -43.9345},
	"curitiba":       {Lat: -25.4284, Lng: -49.2733},
	"porto alegre":   {Lat: -30.0346, Lng: -51.2177},
	"florianopolis":  {Lat: -27.5954, Lng: -48.5480},
	"new york":       {Lat: 40.7128, Lng: -74.0060},
	"los angeles":    {Lat: 34.0522, Lng: -118.2437},
	"chicago":        {Lat: 41.8781, Lng: -87.6298},
	"miami":          {Lat: 25.7617, Lng: -80.1918},
	"san francisco":  {Lat: 37.7749, Lng: -122.4194},
	"toronto":        {Lat: 43.6532, Lng: -79.3832},
	"london":         {Lat: 51.5074, Lng: -0.1278},
	"paris":          {Lat: 48.8566, Lng: 2.3522},
	"berlin":         {Lat: 52.5200, Lng: 13.4050},
	"madrid":         {Lat: 40.4168, Lng: -3.7038},
	"lisbon":         {Lat: 38.7223, Lng: -9.1393},
	"amsterdam":      {Lat: 52.3676, Lng: 4.9041},
	"dubai":          {Lat: 25.2048, Lng: 55.2708},
	"tokyo":          {Lat: 35.6762, Lng: 139.6503},
	"sydney":         {Lat: -33.8688, Lng: 151.2093},
	"mexico city":    {Lat: 19.4326, Lng: -99.1332},
	"buenos aires":   {Lat: -34.6037, Lng: -58.3816},
}

// aliases mapeia nomes alternativos comuns nas APIs das plataformas para as
// chaves canônicas da tabela acima.
var aliases = map[string]string{
	"usa":            "united states",
	"us":             "united states",
	"america":        "united states",
	"uk":             "united kingdom",
	"england":        "united kingdom",
	"great britain":  "united kingdom",
	"uae":            "united arab emirates",
	"emirates":       "united arab emirates",
	"holland":        "netherlands",
	"brasil":         "brazil",
	"deutschland":    "germany",
	"nyc":            "new york",
	"la":             "los angeles",
	"sp":             "sao paulo",
	"são paulo":      "sao paulo",
	"florianópolis":  "florianopolis",
	"czechia":        "czech republic",
	"korea":          "south korea",
	"southern korea": "south korea",
}

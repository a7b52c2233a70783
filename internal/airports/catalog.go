package airports

// catalog is ordered roughly by passenger volume so prefix searches
// surface the majors first.
var catalog = []Airport{
	{IATA: "ATL", ICAO: "KATL", Name: "Hartsfield-Jackson Atlanta International", City: "Atlanta", State: "GA", Country: "United States"},
	{IATA: "DFW", ICAO: "KDFW", Name: "Dallas/Fort Worth International", City: "Dallas-Fort Worth", State: "TX", Country: "United States"},
	{IATA: "DEN", ICAO: "KDEN", Name: "Denver International", City: "Denver", State: "CO", Country: "United States"},
	{IATA: "ORD", ICAO: "KORD", Name: "O'Hare International", City: "Chicago", State: "IL", Country: "United States"},
	{IATA: "LAX", ICAO: "KLAX", Name: "Los Angeles International", City: "Los Angeles", State: "CA", Country: "United States"},
	{IATA: "JFK", ICAO: "KJFK", Name: "John F. Kennedy International", City: "New York", State: "NY", Country: "United States"},
	{IATA: "LAS", ICAO: "KLAS", Name: "Harry Reid International", City: "Las Vegas", State: "NV", Country: "United States"},
	{IATA: "MCO", ICAO: "KMCO", Name: "Orlando International", City: "Orlando", State: "FL", Country: "United States"},
	{IATA: "MIA", ICAO: "KMIA", Name: "Miami International", City: "Miami", State: "FL", Country: "United States"},
	{IATA: "CLT", ICAO: "KCLT", Name: "Charlotte Douglas International", City: "Charlotte", State: "NC", Country: "United States"},
	{IATA: "SEA", ICAO: "KSEA", Name: "Seattle-Tacoma International", City: "Seattle", State: "WA", Country: "United States"},
	{IATA: "PHX", ICAO: "KPHX", Name: "Phoenix Sky Harbor International", City: "Phoenix", State: "AZ", Country: "United States"},
	{IATA: "EWR", ICAO: "KEWR", Name: "Newark Liberty International", City: "Newark", State: "NJ", Country: "United States"},
	{IATA: "SFO", ICAO: "KSFO", Name: "San Francisco International", City: "San Francisco", State: "CA", Country: "United States"},
	{IATA: "IAH", ICAO: "KIAH", Name: "George Bush Intercontinental", City: "Houston", State: "TX", Country: "United States"},
	{IATA: "BOS", ICAO: "KBOS", Name: "Logan International", City: "Boston", State: "MA", Country: "United States"},
	{IATA: "FLL", ICAO: "KFLL", Name: "Fort Lauderdale-Hollywood International", City: "Fort Lauderdale", State: "FL", Country: "United States"},
	{IATA: "MSP", ICAO: "KMSP", Name: "Minneapolis-Saint Paul International", City: "Minneapolis", State: "MN", Country: "United States"},
	{IATA: "LGA", ICAO: "KLGA", Name: "LaGuardia", City: "New York", State: "NY", Country: "United States"},
	{IATA: "DTW", ICAO: "KDTW", Name: "Detroit Metropolitan Wayne County", City: "Detroit", State: "MI", Country: "United States"},
	{IATA: "PHL", ICAO: "KPHL", Name: "Philadelphia International", City: "Philadelphia", State: "PA", Country: "United States"},
	{IATA: "SLC", ICAO: "KSLC", Name: "Salt Lake City International", City: "Salt Lake City", State: "UT", Country: "United States"},
	{IATA: "DCA", ICAO: "KDCA", Name: "Ronald Reagan Washington National", City: "Washington", State: "DC", Country: "United States"},
	{IATA: "IAD", ICAO: "KIAD", Name: "Washington Dulles International", City: "Washington", State: "DC", Country: "United States"},
	{IATA: "SAN", ICAO: "KSAN", Name: "San Diego International", City: "San Diego", State: "CA", Country: "United States"},
	{IATA: "BWI", ICAO: "KBWI", Name: "Baltimore/Washington International", City: "Baltimore", State: "MD", Country: "United States"},
	{IATA: "TPA", ICAO: "KTPA", Name: "Tampa International", City: "Tampa", State: "FL", Country: "United States"},
	{IATA: "AUS", ICAO: "KAUS", Name: "Austin-Bergstrom International", City: "Austin", State: "TX", Country: "United States"},
	{IATA: "BNA", ICAO: "KBNA", Name: "Nashville International", City: "Nashville", State: "TN", Country: "United States"},
	{IATA: "MDW", ICAO: "KMDW", Name: "Chicago Midway International", City: "Chicago", State: "IL", Country: "United States"},
	{IATA: "HNL", ICAO: "PHNL", Name: "Daniel K. Inouye International", City: "Honolulu", State: "HI", Country: "United States"},
	{IATA: "PDX", ICAO: "KPDX", Name: "Portland International", City: "Portland", State: "OR", Country: "United States"},
	{IATA: "STL", ICAO: "KSTL", Name: "St. Louis Lambert International", City: "St. Louis", State: "MO", Country: "United States"},
	{IATA: "RDU", ICAO: "KRDU", Name: "Raleigh-Durham International", City: "Raleigh", State: "NC", Country: "United States"},
	{IATA: "SMF", ICAO: "KSMF", Name: "Sacramento International", City: "Sacramento", State: "CA", Country: "United States"},
	{IATA: "SJC", ICAO: "KSJC", Name: "Norman Y. Mineta San Jose International", City: "San Jose", State: "CA", Country: "United States"},
	{IATA: "MSY", ICAO: "KMSY", Name: "Louis Armstrong New Orleans International", City: "New Orleans", State: "LA", Country: "United States"},
	{IATA: "SNA", ICAO: "KSNA", Name: "John Wayne", City: "Santa Ana", State: "CA", Country: "United States"},
	{IATA: "OAK", ICAO: "KOAK", Name: "Oakland International", City: "Oakland", State: "CA", Country: "United States"},
	{IATA: "ANC", ICAO: "PANC", Name: "Ted Stevens Anchorage International", City: "Anchorage", State: "AK", Country: "United States"},
	{IATA: "YYZ", ICAO: "CYYZ", Name: "Toronto Pearson International", City: "Toronto", Country: "Canada"},
	{IATA: "YVR", ICAO: "CYVR", Name: "Vancouver International", City: "Vancouver", Country: "Canada"},
	{IATA: "YUL", ICAO: "CYUL", Name: "Montreal-Trudeau International", City: "Montreal", Country: "Canada"},
	{IATA: "MEX", ICAO: "MMMX", Name: "Mexico City International", City: "Mexico City", Country: "Mexico"},
	{IATA: "CUN", ICAO: "MMUN", Name: "Cancun International", City: "Cancun", Country: "Mexico"},
	{IATA: "LHR", ICAO: "EGLL", Name: "Heathrow", City: "London", Country: "United Kingdom"},
	{IATA: "LGW", ICAO: "EGKK", Name: "Gatwick", City: "London", Country: "United Kingdom"},
	{IATA: "CDG", ICAO: "LFPG", Name: "Charles de Gaulle", City: "Paris", Country: "France"},
	{IATA: "AMS", ICAO: "EHAM", Name: "Amsterdam Schiphol", City: "Amsterdam", Country: "Netherlands"},
	{IATA: "FRA", ICAO: "EDDF", Name: "Frankfurt", City: "Frankfurt", Country: "Germany"},
	{IATA: "MAD", ICAO: "LEMD", Name: "Adolfo Suarez Madrid-Barajas", City: "Madrid", Country: "Spain"},
	{IATA: "BCN", ICAO: "LEBL", Name: "Josep Tarradellas Barcelona-El Prat", City: "Barcelona", Country: "Spain"},
	{IATA: "FCO", ICAO: "LIRF", Name: "Leonardo da Vinci-Fiumicino", City: "Rome", Country: "Italy"},
	{IATA: "LIS", ICAO: "LPPT", Name: "Humberto Delgado", City: "Lisbon", Country: "Portugal"},
	{IATA: "DUB", ICAO: "EIDW", Name: "Dublin", City: "Dublin", Country: "Ireland"},
	{IATA: "ZRH", ICAO: "LSZH", Name: "Zurich", City: "Zurich", Country: "Switzerland"},
	{IATA: "IST", ICAO: "LTFM", Name: "Istanbul", City: "Istanbul", Country: "Turkey"},
	{IATA: "DXB", ICAO: "OMDB", Name: "Dubai International", City: "Dubai", Country: "United Arab Emirates"},
	{IATA: "HND", ICAO: "RJTT", Name: "Tokyo Haneda", City: "Tokyo", Country: "Japan"},
	{IATA: "NRT", ICAO: "RJAA", Name: "Narita International", City: "Tokyo", Country: "Japan"},
	{IATA: "ICN", ICAO: "RKSI", Name: "Incheon International", City: "Seoul", Country: "South Korea"},
	{IATA: "SIN", ICAO: "WSSS", Name: "Singapore Changi", City: "Singapore", Country: "Singapore"},
	{IATA: "HKG", ICAO: "VHHH", Name: "Hong Kong International", City: "Hong Kong", Country: "Hong Kong"},
	{IATA: "SYD", ICAO: "YSSY", Name: "Sydney Kingsford Smith", City: "Sydney", Country: "Australia"},
	{IATA: "AKL", ICAO: "NZAA", Name: "Auckland", City: "Auckland", Country: "New Zealand"},
	{IATA: "GRU", ICAO: "SBGR", Name: "Sao Paulo-Guarulhos International", City: "Sao Paulo", Country: "Brazil"},
	{IATA: "EZE", ICAO: "SAEZ", Name: "Ministro Pistarini International", City: "Buenos Aires", Country: "Argentina"},
	{IATA: "SJU", ICAO: "TJSJ", Name: "Luis Munoz Marin International", City: "San Juan", State: "PR", Country: "United States"},
	{IATA: "OGG", ICAO: "PHOG", Name: "Kahului", City: "Kahului", State: "HI", Country: "United States"},
}

package neo4jstore

// Cypher statements. Parameters are always passed separately.
const (
	cypherUpsertCity = `
MERGE (c:City {name: $name, country: $country})
RETURN c.name AS name, c.country AS country`

	cypherListCities = `
MATCH (c:City)
WHERE $country IS NULL OR c.country = $country
RETURN c.name AS name, c.country AS country`

	cypherGetCity = `
MATCH (c:City {name: $name})
RETURN c.name AS name, c.country AS country
LIMIT 1`

	cypherUpsertAirport = `
MATCH (c:City {name: $city})
WITH collect(c) AS owners
WHERE size(owners) > 0
MERGE (a:Airport {code: $code})
SET a.name = $name,
    a.numberOfTerminals = $numberOfTerminals,
    a.address = $address
WITH a, owners
OPTIONAL MATCH (old:City)-[h:HAS_AIRPORT]->(a)
WHERE NOT old IN owners
OPTIONAL MATCH (a)-[l:LOCATED_IN]->(old)
DELETE h, l
WITH DISTINCT a, owners
UNWIND owners AS c
MERGE (c)-[:HAS_AIRPORT]->(a)
MERGE (a)-[:LOCATED_IN]->(c)
RETURN count(c) AS linked`

	cypherListAirports = `
MATCH (c:City {name: $city})-[:HAS_AIRPORT]->(a:Airport)
RETURN a.code AS code, c.name AS city, a.name AS name,
       a.numberOfTerminals AS numberOfTerminals, a.address AS address`

	cypherGetAirport = `
MATCH (a:Airport {code: $code})<-[:HAS_AIRPORT]-(c:City)
RETURN a.code AS code, c.name AS city, a.name AS name,
       a.numberOfTerminals AS numberOfTerminals, a.address AS address
LIMIT 1`

	cypherFlightExists = `
MATCH (f:Flight {number: $number})
RETURN count(f) > 0 AS found`

	cypherCreateFlight = `
OPTIONAL MATCH (existing:Flight {number: $number})
WITH existing
WHERE existing IS NULL
CREATE (f:Flight {number: $number, price: $price,
                  flightTimeInMinutes: $flightTimeInMinutes, operator: $operator})
MERGE (from:Airport {code: $fromCode})
MERGE (to:Airport {code: $toCode})
CREATE (f)-[:DEPARTS_FROM]->(from)
CREATE (f)-[:ARRIVES_AT]->(to)
RETURN f.number AS number`

	cypherGetFlight = `
MATCH (f:Flight {number: $number})-[:DEPARTS_FROM]->(fromAirport:Airport)-[:LOCATED_IN]->(fromCity:City),
      (f)-[:ARRIVES_AT]->(toAirport:Airport)-[:LOCATED_IN]->(toCity:City)
RETURN f.number AS number, f.price AS price, f.flightTimeInMinutes AS flightTimeInMinutes,
       f.operator AS operator, fromAirport.code AS fromAirport, fromCity.name AS fromCity,
       toAirport.code AS toAirport, toCity.name AS toCity
LIMIT 1`

	cypherCountDepartures = `
MATCH (:City {name: $city})<-[:LOCATED_IN]-(:Airport)<-[:DEPARTS_FROM]-(f:Flight)
RETURN count(f) AS flights`

	cypherCountArrivals = `
MATCH (:City {name: $city})<-[:LOCATED_IN]-(:Airport)<-[:ARRIVES_AT]-(f:Flight)
RETURN count(f) AS flights`

	cypherFindRoutes = `
MATCH path = (from:City {name: $fromCity})<-[:LOCATED_IN]-(:Airport)<-[:DEPARTS_FROM]-(:Flight)
             -[:ARRIVES_AT]->(:Airport)-[:LOCATED_IN]->(to:City {name: $toCity})
WITH [n IN nodes(path) WHERE n:Airport | n.code] AS airports,
     [n IN nodes(path) WHERE n:Flight | {
        number: n.number,
        price: n.price,
        flightTimeInMinutes: n.flightTimeInMinutes,
        operator: n.operator
     }] AS flights
RETURN airports[0] AS fromAirport, airports[-1] AS toAirport, flights`

	cypherDeriveLocatedIn = `
MATCH (a:Airport), (c:City)
WHERE a.name CONTAINS c.name OR a.address CONTAINS c.name
MERGE (a)-[:LOCATED_IN]->(c)`

	cypherDeriveDepartsFromCity = `
MATCH (f:Flight)-[:DEPARTS_FROM]->(:Airport)-[:LOCATED_IN]->(c:City)
MERGE (f)-[:DEPARTS_FROM_CITY]->(c)`

	cypherDeriveArrivesInCity = `
MATCH (f:Flight)-[:ARRIVES_AT]->(:Airport)-[:LOCATED_IN]->(c:City)
MERGE (f)-[:ARRIVES_IN_CITY]->(c)`

	cypherWipeAll = `
MATCH (n)
DETACH DELETE n`
)

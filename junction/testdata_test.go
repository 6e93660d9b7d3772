package junction_test

// sample is the 20-box playground from the puzzle statement.
const sample = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
`

// triangle is a 3-4-5 triangle near the origin plus two far boxes.
// Closest pairs: 0-1 (3), 0-2 (4), 1-2 (5), 1-3 (97), 0-3 (100), 3-4 (100)…
const triangle = `0,0,0
3,0,0
0,4,0
100,0,0
200,0,0
`

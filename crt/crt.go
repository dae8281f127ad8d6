package crt

// LinearProbing - Name of the linear probing collision resolution technique
const LinearProbing string = "lin"

// QuadraticProbing - Name of the quadratic probing collision resolution technique
const QuadraticProbing string = "qua"

// DoubleHashing - Name of the double hashing collision resolution technique
const DoubleHashing string = "dou"

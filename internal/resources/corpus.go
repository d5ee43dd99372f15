package resources

import "sehat-ai/backend/internal/model"

// The fixed healthcare corpus. This is a stand-in data source: distances are
// corpus-provided, not derived from the caller's coordinates. Shared
// read-only across requests; Resolve must never mutate these slices.

var corpusDoctors = []model.Doctor{
	{
		Name:           "Dr. Anil Sharma",
		Specialization: "Cardiologist",
		Distance:       1.2,
		Address:        "123 Health Street, Mumbai",
		Rating:         4.8,
		Available:      true,
		Phone:          "+91-9876543210",
	},
	{
		Name:           "Dr. Priya Patel",
		Specialization: "Dermatologist",
		Distance:       2.5,
		Address:        "456 Care Lane, Mumbai",
		Rating:         4.5,
		Available:      true,
		Phone:          "+91-9876543211",
	},
	{
		Name:           "Dr. Rajan Verma",
		Specialization: "Pediatrician",
		Distance:       0.8,
		Address:        "789 Wellness Road, Mumbai",
		Rating:         4.9,
		Available:      false,
		Phone:          "+91-9876543212",
	},
	{
		Name:           "Dr. Sunita Gupta",
		Specialization: "Neurologist",
		Distance:       3.1,
		Address:        "234 Brain Avenue, Mumbai",
		Rating:         4.7,
		Available:      true,
		Phone:          "+91-9876543213",
	},
	{
		Name:           "Dr. Vikram Singh",
		Specialization: "Orthopedic",
		Distance:       1.5,
		Address:        "567 Bone Street, Mumbai",
		Rating:         4.6,
		Available:      true,
		Phone:          "+91-9876543214",
	},
}

var corpusChemists = []model.Chemist{
	{
		Name:     "MedPlus Pharmacy",
		Distance: 0.5,
		Address:  "100 Health Avenue, Mumbai",
		Rating:   4.3,
		OpenNow:  true,
		Phone:    "+91-9876543220",
	},
	{
		Name:     "Apollo Pharmacy",
		Distance: 1.8,
		Address:  "200 Medicine Lane, Mumbai",
		Rating:   4.5,
		OpenNow:  true,
		Phone:    "+91-9876543221",
	},
	{
		Name:     "LifeCare Medicines",
		Distance: 2.2,
		Address:  "300 Wellness Road, Mumbai",
		Rating:   4.1,
		OpenNow:  false,
		Phone:    "+91-9876543222",
	},
}

var corpusMedicines = []model.Medicine{
	{
		Name:         "Paracetamol",
		Type:         "Fever & Pain Relief",
		AvailableAt:  []string{"MedPlus Pharmacy", "Apollo Pharmacy", "LifeCare Medicines"},
		Price:        "₹35 - ₹50",
		Prescription: false,
	},
	{
		Name:         "Azithromycin",
		Type:         "Antibiotic",
		AvailableAt:  []string{"MedPlus Pharmacy", "Apollo Pharmacy"},
		Price:        "₹120 - ₹150",
		Prescription: true,
	},
	{
		Name:         "Montelukast",
		Type:         "Asthma & Allergy",
		AvailableAt:  []string{"Apollo Pharmacy"},
		Price:        "₹180 - ₹220",
		Prescription: true,
	},
	{
		Name:         "Cetrizine",
		Type:         "Antihistamine",
		AvailableAt:  []string{"MedPlus Pharmacy", "LifeCare Medicines"},
		Price:        "₹45 - ₹60",
		Prescription: false,
	},
	{
		Name:         "Omeprazole",
		Type:         "Antacid",
		AvailableAt:  []string{"MedPlus Pharmacy", "Apollo Pharmacy", "LifeCare Medicines"},
		Price:        "₹85 - ₹110",
		Prescription: false,
	},
}

var corpusHospitals = []model.Hospital{
	{
		Name:      "Lilavati Hospital",
		Distance:  3.5,
		Address:   "A-791 Bandra Reclamation, Mumbai",
		Rating:    4.7,
		Emergency: true,
		Phone:     "+91-2226751000",
	},
	{
		Name:      "Kokilaben Hospital",
		Distance:  5.2,
		Address:   "Rao Saheb, Achutrao Patwardhan Marg, Mumbai",
		Rating:    4.8,
		Emergency: true,
		Phone:     "+91-2230999999",
	},
	{
		Name:      "Nanavati Hospital",
		Distance:  4.1,
		Address:   "S.V. Road, Vile Parle West, Mumbai",
		Rating:    4.6,
		Emergency: true,
		Phone:     "+91-2226267500",
	},
}
